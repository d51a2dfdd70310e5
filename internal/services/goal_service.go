package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Aguti1902/appfitness-backend/internal/localstore"
	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/planner"
)

var ErrGoalNotFound = errors.New("goal not found")

const milestoneCount = 5

// GoalService manages long-term user goals with auto-generated plan
// steps and evenly spaced milestones. Goals live in the device store
// only.
type GoalService struct {
	store    *localstore.Store
	profiles profileReader
	model    chatModel
}

func NewGoalService(store *localstore.Store, profiles profileReader, model chatModel) *GoalService {
	return &GoalService{store: store, profiles: profiles, model: model}
}

type CreateGoalInput struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     models.GoalCategory `json:"category"`
	CurrentValue float64             `json:"current_value"`
	TargetValue  float64             `json:"target_value"`
	Unit         string              `json:"unit"`
	Deadline     *time.Time          `json:"deadline"`
}

func (s *GoalService) List(userID int64) ([]models.UserGoal, error) {
	return s.load(userID)
}

func (s *GoalService) Create(ctx context.Context, userID int64, input CreateGoalInput) (*models.UserGoal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidInput
	}
	if input.TargetValue == input.CurrentValue {
		return nil, ErrInvalidInput
	}
	switch input.Category {
	case models.GoalStrength, models.GoalCardio, models.GoalWeight, models.GoalHabit, models.GoalOther:
	default:
		input.Category = models.GoalOther
	}

	now := time.Now().UTC()
	goal := models.UserGoal{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Category:     input.Category,
		StartValue:   input.CurrentValue,
		CurrentValue: input.CurrentValue,
		TargetValue:  input.TargetValue,
		Unit:         input.Unit,
		Deadline:     input.Deadline,
		PlanSteps:    s.planSteps(ctx, userID, input),
		Milestones:   buildMilestones(input.CurrentValue, input.TargetValue, input.Unit),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	goals, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	goals = append(goals, goal)
	if err := s.save(userID, goals); err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateProgress sets the goal's current value and recomputes
// milestone and goal completion, direction aware.
func (s *GoalService) UpdateProgress(userID int64, goalID string, value float64) (*models.UserGoal, error) {
	goals, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}

		goal := &goals[i]
		goal.CurrentValue = value
		ascending := goal.TargetValue >= goal.StartValue
		for j := range goal.Milestones {
			if ascending {
				goal.Milestones[j].Completed = value >= goal.Milestones[j].Value
			} else {
				goal.Milestones[j].Completed = value <= goal.Milestones[j].Value
			}
		}
		if ascending {
			goal.Completed = value >= goal.TargetValue
		} else {
			goal.Completed = value <= goal.TargetValue
		}
		goal.UpdatedAt = time.Now().UTC()

		if err := s.save(userID, goals); err != nil {
			return nil, err
		}
		return goal, nil
	}
	return nil, ErrGoalNotFound
}

func (s *GoalService) Delete(userID int64, goalID string) error {
	goals, err := s.load(userID)
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID == goalID {
			goals = append(goals[:i], goals[i+1:]...)
			return s.save(userID, goals)
		}
	}
	return ErrGoalNotFound
}

func (s *GoalService) load(userID int64) ([]models.UserGoal, error) {
	goals := []models.UserGoal{}
	if _, err := s.store.Get(localstore.GoalsKey(userID), &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *GoalService) save(userID int64, goals []models.UserGoal) error {
	return s.store.Put(localstore.GoalsKey(userID), goals)
}

// planSteps asks the model for concrete steps and falls back to canned
// steps per category when it is unavailable.
func (s *GoalService) planSteps(ctx context.Context, userID int64, input CreateGoalInput) []string {
	prompt := fmt.Sprintf(
		"Dame exactamente %d pasos concretos y breves para lograr este objetivo: %s. Valor actual: %.1f %s, valor objetivo: %.1f %s. Responde solo con la lista, un paso por línea.",
		milestoneCount, input.Title, input.CurrentValue, input.Unit, input.TargetValue, input.Unit,
	)

	genInput := planner.GenerationInput{}
	if profile, err := s.profiles.GetByUserID(ctx, userID); err == nil && profile.Goals != nil {
		genInput.Goals = *profile.Goals
		if profile.ProfileData != nil {
			genInput.Profile = *profile.ProfileData
		}
		genInput.TrainingTypes = profile.TrainingTypes
	}

	reply, err := s.model.Chat(ctx, genInput, prompt)
	if err != nil {
		log.Printf("goal step generation failed for user %d, using defaults: %v", userID, err)
		return defaultPlanSteps(input.Category)
	}

	steps := parsePlanSteps(reply)
	if len(steps) == 0 {
		return defaultPlanSteps(input.Category)
	}
	return steps
}

func parsePlanSteps(reply string) []string {
	var steps []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		if line == "" {
			continue
		}
		steps = append(steps, line)
		if len(steps) == milestoneCount {
			break
		}
	}
	return steps
}

func defaultPlanSteps(category models.GoalCategory) []string {
	switch category {
	case models.GoalWeight:
		return []string{
			"Registra tu peso una vez por semana, siempre en las mismas condiciones",
			"Mantén un déficit o superávit calórico moderado según tu objetivo",
			"Prioriza proteína en cada comida",
			"Entrena fuerza al menos 3 días por semana",
			"Duerme 7-8 horas para regular el apetito",
		}
	case models.GoalStrength:
		return []string{
			"Trabaja los levantamientos básicos 2-3 veces por semana",
			"Sube el peso de forma progresiva, un poco cada semana",
			"Cuida la técnica antes de añadir carga",
			"Descansa 2-3 minutos entre series pesadas",
			"Registra tus marcas para ver la progresión",
		}
	case models.GoalCardio:
		return []string{
			"Acumula volumen aeróbico suave la mayor parte de la semana",
			"Añade una sesión de intervalos semanal",
			"Incrementa la distancia total un 10% como máximo por semana",
			"Hidrátate antes, durante y después de las sesiones largas",
			"Reserva un día de descanso completo",
		}
	default:
		return []string{
			"Divide el objetivo en metas semanales pequeñas",
			"Reserva un horario fijo para trabajar en él",
			"Registra tu progreso cada semana",
			"Revisa y ajusta el plan cada mes",
			"Celebra cada hito alcanzado",
		}
	}
}

func buildMilestones(start, target float64, unit string) []models.GoalMilestone {
	milestones := make([]models.GoalMilestone, 0, milestoneCount)
	step := (target - start) / milestoneCount
	for i := 1; i <= milestoneCount; i++ {
		value := math.Round((start+step*float64(i))*10) / 10
		milestones = append(milestones, models.GoalMilestone{
			Value:       value,
			Description: fmt.Sprintf("Alcanza %.1f %s", value, unit),
		})
	}
	return milestones
}
