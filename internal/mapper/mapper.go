// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"task-management-api/internal/entities"
	"task-management-api/internal/transport/http/dto"
)

// ToDTOUser maps entities.User to its public transport model. The password
// hash never crosses this boundary.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		EmailVerifiedAt: u.EmailVerifiedAt,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// ToDTOUserSummary maps entities.User to the reduced login projection.
func ToDTOUserSummary(u entities.User) dto.UserSummary {
	return dto.UserSummary{
		Name:            u.Name,
		Email:           u.Email,
		EmailVerifiedAt: u.EmailVerifiedAt,
	}
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(t entities.Team) dto.Team {
	return dto.Team{
		ID:        t.ID,
		Name:      t.Name,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToDTOTeamList maps a slice of teams to transport models.
func ToDTOTeamList(list []entities.Team) []dto.Team {
	res := make([]dto.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTeam(t))
	}
	return res
}

// ToDTOProject maps entities.Project to transport model.
func ToDTOProject(p entities.Project) dto.Project {
	return dto.Project{
		ID:        p.ID,
		Name:      p.Name,
		TeamID:    p.TeamID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToDTOProjectList maps a slice of projects to transport models.
func ToDTOProjectList(list []entities.Project) []dto.Project {
	res := make([]dto.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToDTOProject(p))
	}
	return res
}

// ToDTOTask maps entities.Task to transport model.
func ToDTOTask(t entities.Task) dto.Task {
	return dto.Task{
		ID:        t.ID,
		Name:      t.Name,
		Status:    string(t.Status),
		ProjectID: t.ProjectID,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToDTOTaskList maps a slice of tasks to transport models.
func ToDTOTaskList(list []entities.Task) []dto.Task {
	res := make([]dto.Task, 0, len(list))
	for _, t := range list {
		res = append(res, ToDTOTask(t))
	}
	return res
}
