package store

import (
	"time"

	"github.com/existflow/ironplan/internal/model"
)

// Sample returns the demonstration team and its week of tasks
func Sample() model.Dataset {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2024, time.December, day, hour, minute, 0, 0, time.Local)
	}

	return model.Dataset{
		Employees: []model.Employee{
			{
				ID:          "1",
				FirstName:   "Marie",
				LastName:    "Dupont",
				Position:    "Développeuse Frontend",
				Color:       "#3B82F6",
				Email:       "marie.dupont@entreprise.fr",
				IsAvailable: true,
			},
			{
				ID:          "2",
				FirstName:   "Pierre",
				LastName:    "Martin",
				Position:    "Chef de Projet",
				Color:       "#10B981",
				Email:       "pierre.martin@entreprise.fr",
				IsAvailable: true,
			},
			{
				ID:          "3",
				FirstName:   "Sophie",
				LastName:    "Bernard",
				Position:    "Designer UX/UI",
				Color:       "#F59E0B",
				Email:       "sophie.bernard@entreprise.fr",
				IsAvailable: false,
			},
			{
				ID:          "4",
				FirstName:   "Thomas",
				LastName:    "Leroy",
				Position:    "Développeur Backend",
				Color:       "#8B5CF6",
				Email:       "thomas.leroy@entreprise.fr",
				IsAvailable: true,
			},
			{
				ID:          "5",
				FirstName:   "Emma",
				LastName:    "Moreau",
				Position:    "Support Client",
				Color:       "#EF4444",
				Email:       "emma.moreau@entreprise.fr",
				IsAvailable: true,
			},
		},
		Tasks: []model.Task{
			{
				ID:          "1",
				Title:       "Réunion équipe hebdomadaire",
				Description: "Point sur les projets en cours et planning de la semaine",
				StartDate:   at(23, 9, 0),
				EndDate:     at(23, 10, 0),
				EmployeeID:  "2",
				Category:    model.CategoryMeeting,
				Priority:    model.PriorityMedium,
				Status:      model.StatusPending,
				Color:       "#3B82F6",
			},
			{
				ID:          "2",
				Title:       "Développement interface utilisateur",
				Description: "Création des composants React pour le dashboard",
				StartDate:   at(23, 10, 30),
				EndDate:     at(23, 12, 30),
				EmployeeID:  "1",
				Category:    model.CategoryDevelopment,
				Priority:    model.PriorityHigh,
				Status:      model.StatusInProgress,
				Color:       "#10B981",
			},
			{
				ID:          "3",
				Title:       "Conception maquettes mobile",
				Description: "Design responsive pour application mobile",
				StartDate:   at(23, 14, 0),
				EndDate:     at(23, 17, 0),
				EmployeeID:  "3",
				Category:    model.CategoryDevelopment,
				Priority:    model.PriorityHigh,
				Status:      model.StatusPending,
				Color:       "#F59E0B",
			},
			{
				ID:          "4",
				Title:       "Support client urgent",
				Description: "Résolution bug critique en production",
				StartDate:   at(23, 8, 0),
				EndDate:     at(23, 10, 0),
				EmployeeID:  "5",
				Category:    model.CategorySupport,
				Priority:    model.PriorityUrgent,
				Status:      model.StatusInProgress,
				Color:       "#EF4444",
			},
			{
				ID:          "5",
				Title:       "Développement API",
				Description: "Implémentation endpoints REST",
				StartDate:   at(23, 13, 0),
				EndDate:     at(23, 16, 0),
				EmployeeID:  "4",
				Category:    model.CategoryDevelopment,
				Priority:    model.PriorityMedium,
				Status:      model.StatusPending,
				Color:       "#8B5CF6",
			},
			{
				ID:          "6",
				Title:       "Formation nouveau logiciel",
				Description: "Session de formation sur les nouveaux outils",
				StartDate:   at(24, 9, 0),
				EndDate:     at(24, 11, 0),
				EmployeeID:  "1",
				Category:    model.CategoryTraining,
				Priority:    model.PriorityLow,
				Status:      model.StatusPending,
				Color:       "#6B7280",
			},
		},
	}
}
