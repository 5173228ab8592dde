package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/idubina/it-company-task-manager/internal/constants"
	"github.com/idubina/it-company-task-manager/internal/models"
	"github.com/idubina/it-company-task-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeamNameRequired = errors.New("team name is required")
	ErrTeamNameTooLong  = errors.New("team name too long")
	ErrTeamNameTaken    = errors.New("team name already exists")
	ErrInvalidMember    = errors.New("one or more members do not exist")
)

// TeamService handles team business logic.
type TeamService struct {
	teamRepo   repository.TeamRepository
	workerRepo repository.WorkerRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, workerRepo repository.WorkerRepository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		workerRepo: workerRepo,
	}
}

// CreateTeamInput represents the team creation form, member multi-select
// included.
type CreateTeamInput struct {
	Name      string
	MemberIDs []uint64
}

// CreateTeam validates the form and creates the team with its members.
func (s *TeamService) CreateTeam(input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if len(name) > constants.MaxNameLength {
		return nil, ErrTeamNameTooLong
	}

	if _, err := s.teamRepo.FindByName(name); err == nil {
		return nil, ErrTeamNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}

	memberIDs := uniqueUint64(input.MemberIDs)
	members, err := s.workerRepo.FindByIDs(memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to verify members: %w", err)
	}
	if len(members) != len(memberIDs) {
		return nil, ErrInvalidMember
	}

	team := &models.Team{
		Name:    name,
		Members: members,
	}

	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.teamRepo.FindByID(team.ID, "Members")
}

// ListTeams returns one page of teams filtered by name substring.
func (s *TeamService) ListTeams(query string, page int) ([]models.Team, int64, error) {
	teams, total, err := s.teamRepo.List(repository.NameFilter{
		Query:    query,
		Page:     page,
		PageSize: constants.ListPageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list teams: %w", err)
	}

	return teams, total, nil
}

// GetTeam resolves the team detail view: members ordered by username,
// projects ordered by name.
func (s *TeamService) GetTeam(id uint64) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(id, "Members", "Projects")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	sort.Slice(team.Members, func(i, j int) bool { return team.Members[i].Username < team.Members[j].Username })
	sort.Slice(team.Projects, func(i, j int) bool { return team.Projects[i].Name < team.Projects[j].Name })

	return team, nil
}

// DeleteTeam removes a team, leaving its projects without an owning team.
func (s *TeamService) DeleteTeam(id uint64) error {
	if _, err := s.teamRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to find team: %w", err)
	}

	if err := s.teamRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}
