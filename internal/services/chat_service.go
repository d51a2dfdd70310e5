package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/planner"
)

// Intent is the coarse classification of an incoming chat message.
type Intent int

const (
	IntentChat Intent = iota
	IntentSwapDays
	IntentShowRoutine
)

const (
	ReplyTypeChat       = "chat"
	ReplyTypeSwapPrompt = "swap_prompt"
	ReplyTypeRoutine    = "routine"
)

var swapTriggers = []string{"intercambiar", "cambiar día", "cambiar dia", "swap"}

var routineTriggers = []string{"mi rutina", "ver rutina", "show my routine", "my routine"}

// ClassifyIntent matches known trigger phrases as case-insensitive
// substrings. Swap wins over routine when both appear.
func ClassifyIntent(message string) Intent {
	lowered := strings.ToLower(message)
	for _, trigger := range swapTriggers {
		if strings.Contains(lowered, trigger) {
			return IntentSwapDays
		}
	}
	for _, trigger := range routineTriggers {
		if strings.Contains(lowered, trigger) {
			return IntentShowRoutine
		}
	}
	return IntentChat
}

type ChatReply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type planReader interface {
	Get(userID int64) (*models.GeneratedPlan, error)
}

type chatModel interface {
	Chat(ctx context.Context, input planner.GenerationInput, message string) (string, error)
}

// ChatService interprets coach chat messages. Command intents never
// reach the model; free chat goes to the model with a keyword-based
// canned reply as fallback.
type ChatService struct {
	plans    planReader
	profiles profileReader
	model    chatModel
}

func NewChatService(plans planReader, profiles profileReader, model chatModel) *ChatService {
	return &ChatService{plans: plans, profiles: profiles, model: model}
}

func (s *ChatService) HandleMessage(ctx context.Context, userID int64, message string) ChatReply {
	switch ClassifyIntent(message) {
	case IntentSwapDays:
		return ChatReply{
			Type:    ReplyTypeSwapPrompt,
			Message: "¡Claro! Selecciona los dos días que quieres intercambiar en tu rutina.",
		}
	case IntentShowRoutine:
		return ChatReply{Type: ReplyTypeRoutine, Message: s.renderRoutine(userID)}
	default:
		return ChatReply{Type: ReplyTypeChat, Message: s.freeChat(ctx, userID, message)}
	}
}

var spanishDayNames = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

func (s *ChatService) renderRoutine(userID int64) string {
	plan, err := s.plans.Get(userID)
	if err != nil {
		if !errors.Is(err, ErrPlanNotFound) {
			log.Printf("chat routine lookup failed for user %d: %v", userID, err)
		}
		return "Todavía no tienes una rutina generada. Completa el onboarding y genera tu plan."
	}

	var b strings.Builder
	b.WriteString("Esta es tu rutina semanal:\n")
	for _, day := range plan.WorkoutPlan.Days {
		name := ""
		if day.Day >= 0 && day.Day < len(spanishDayNames) {
			name = spanishDayNames[day.Day]
		}
		if day.IsRestDay {
			fmt.Fprintf(&b, "- %s: Descanso\n", name)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%d min)\n", name, day.Title, day.DurationMinutes)
	}
	return b.String()
}

func (s *ChatService) freeChat(ctx context.Context, userID int64, message string) string {
	input := planner.GenerationInput{}
	if profile, err := s.profiles.GetByUserID(ctx, userID); err == nil {
		if profile.Goals != nil {
			input.Goals = *profile.Goals
		}
		if profile.ProfileData != nil {
			input.Profile = *profile.ProfileData
		}
		input.TrainingTypes = profile.TrainingTypes
	}

	reply, err := s.model.Chat(ctx, input, message)
	if err != nil {
		log.Printf("chat model failed for user %d, using canned reply: %v", userID, err)
		return cannedReply(message)
	}
	return reply
}

// cannedReply covers the offline path with topic-keyed responses.
func cannedReply(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case containsAny(lowered, "entrenamiento", "entrenar", "ejercicio", "workout", "rutina"):
		return "Para tu entrenamiento de hoy, céntrate en la técnica antes que en el peso. Si tienes dudas sobre un ejercicio, pídeme una alternativa."
	case containsAny(lowered, "dieta", "comida", "comer", "nutrición", "nutricion", "diet"):
		return "Tu plan de comidas está pensado para tu objetivo. Intenta respetar las cantidades y no te saltes el desayuno."
	case containsAny(lowered, "peso", "adelgazar", "perder", "weight"):
		return "La pérdida de peso sostenible llega con constancia: déficit calórico moderado, entrenamiento regular y buen descanso."
	case containsAny(lowered, "hola", "buenas", "hey", "hello"):
		return "¡Hola! Soy tu entrenador. Puedo ayudarte con tu rutina, tu dieta o responder dudas de entrenamiento. ¿Qué necesitas?"
	default:
		return "Ahora mismo no puedo darte una respuesta detallada. Prueba a preguntarme por tu rutina, tu dieta o tus objetivos."
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
