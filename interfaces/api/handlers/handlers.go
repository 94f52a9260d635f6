package handlers

import (
	"planora/domain/services"
	"planora/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService    services.UserService
	TaskService    services.TaskService
	RoadmapService services.RoadmapService
	NoteService    services.NoteService
	ChatService    services.ChatService
	SessionConfig  config.SessionConfig // สำหรับ cookie lifetime
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler    *AuthHandler
	TaskHandler    *TaskHandler
	EventHandler   *EventHandler
	NoteHandler    *NoteHandler
	RoadmapHandler *RoadmapHandler
	ChatHandler    *ChatHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:    NewAuthHandler(services.UserService, services.SessionConfig),
		TaskHandler:    NewTaskHandler(services.TaskService),
		EventHandler:   NewEventHandler(services.TaskService),
		NoteHandler:    NewNoteHandler(services.NoteService),
		RoadmapHandler: NewRoadmapHandler(services.RoadmapService),
		ChatHandler:    NewChatHandler(services.ChatService),
	}
}
