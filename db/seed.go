package db

import (
	"log"
	"os"
	"time"

	"github.com/linskybing/ticketdesk/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

type seedUser struct {
	Username string  `yaml:"username"`
	Password string  `yaml:"password"`
	FullName *string `yaml:"full_name"`
}

type seedTeam struct {
	Name    string   `yaml:"name"`
	Admins  []string `yaml:"admins"`
	Members []string `yaml:"members"`
}

type seedProject struct {
	Name       string   `yaml:"name"`
	WorkerTeam string   `yaml:"worker_team"`
	Admins     []string `yaml:"admins"`
	Members    []string `yaml:"members"`
}

type seedFile struct {
	Users    []seedUser    `yaml:"users"`
	Teams    []seedTeam    `yaml:"teams"`
	Projects []seedProject `yaml:"projects"`
}

// SeedFromYAML loads bootstrap users, teams and projects from path. Existing
// rows are left alone, so the file can stay configured across restarts.
func SeedFromYAML(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return err
	}

	userIDs := map[string]uint{}
	for _, su := range seed.Users {
		var user models.User
		err := DB.Where("username = ?", su.Username).First(&user).Error
		if err == nil {
			userIDs[su.Username] = user.UID
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = models.User{
			Username: su.Username,
			Password: string(hashed),
			FullName: su.FullName,
		}
		if err := DB.Create(&user).Error; err != nil {
			return err
		}
		userIDs[su.Username] = user.UID
	}

	teamIDs := map[string]uint{}
	for _, st := range seed.Teams {
		var team models.Team
		err := DB.Where("team_name = ?", st.Name).First(&team).Error
		if err != nil {
			team = models.Team{TeamName: st.Name}
			if err := DB.Create(&team).Error; err != nil {
				return err
			}
		}
		teamIDs[st.Name] = team.TID

		seedTeamMembers(team.TID, st.Admins, models.TeamRoleAdmin, userIDs)
		seedTeamMembers(team.TID, st.Members, models.TeamRoleMember, userIDs)
	}

	for _, sp := range seed.Projects {
		var project models.Project
		err := DB.Where("project_name = ?", sp.Name).First(&project).Error
		if err != nil {
			project = models.Project{ProjectName: sp.Name}
			if tid, ok := teamIDs[sp.WorkerTeam]; ok {
				project.WorkerTeamID = &tid
			}
			if err := DB.Create(&project).Error; err != nil {
				return err
			}
		}

		seedProjectMembers(project.PID, sp.Admins, models.ProjectRoleAdmin, userIDs)
		seedProjectMembers(project.PID, sp.Members, models.ProjectRoleMember, userIDs)
	}

	log.Printf("Seeded %d users, %d teams, %d projects from %s",
		len(seed.Users), len(seed.Teams), len(seed.Projects), path)
	return nil
}

func seedTeamMembers(tid uint, usernames []string, role models.TeamRole, userIDs map[string]uint) {
	for _, name := range usernames {
		uid, ok := userIDs[name]
		if !ok {
			log.Printf("Seed: unknown user %q for team %d, skipping", name, tid)
			continue
		}
		membership := models.UserTeam{UID: uid, TID: tid, Role: string(role), JoinedAt: time.Now()}
		var existing models.UserTeam
		if err := DB.First(&existing, "u_id = ? AND t_id = ?", uid, tid).Error; err == nil {
			continue
		}
		if err := DB.Create(&membership).Error; err != nil {
			log.Printf("Seed: add user %q to team %d: %v", name, tid, err)
		}
	}
}

func seedProjectMembers(pid uint, usernames []string, role models.ProjectRole, userIDs map[string]uint) {
	for _, name := range usernames {
		uid, ok := userIDs[name]
		if !ok {
			log.Printf("Seed: unknown user %q for project %d, skipping", name, pid)
			continue
		}
		membership := models.ProjectUser{UID: uid, PID: pid, Role: string(role)}
		var existing models.ProjectUser
		if err := DB.First(&existing, "u_id = ? AND p_id = ?", uid, pid).Error; err == nil {
			continue
		}
		if err := DB.Create(&membership).Error; err != nil {
			log.Printf("Seed: add user %q to project %d: %v", name, pid, err)
		}
	}
}
