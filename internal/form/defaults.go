package form

import "actapi/internal/model"

// Default returns a pre-filled form with the values the minutes desk starts from.
func Default() model.Form {
	const (
		start = "2025-06-19"
		end   = "2025-06-26"
		team  = "Stefanini / Leonardo Valdizan / Carlos Rivera"
	)
	return model.Form{
		Date:      "2025-10-09",
		StartTime: "16:30",
		EndTime:   "17:30",
		Location:  "Reunión virtual Teams",
		Client:    "Luz Del Sur",
		Project:   "Servicio de Mesa de Ayuda",
		Objective: "Informe Semanal de Mesa de Ayuda",
		Participants: []model.ParticipantForm{
			{Name: "Richard Perez", Company: "LDS", Role: "Soporte TI"},
			{Name: "Leonardo Valdizan", Company: "Stefanini", Role: "Help Desk Lead"},
			{Name: "Katherine Navarrete", Company: "Stefanini", Role: "Delivery Lead"},
		},
		Agreements: []model.AgreementForm{
			{Description: "Agregar categorías en el catálogo de servicios (Incidentes).", Responsible: team, StartDate: start, EndDate: end, Progress: "100%"},
			{Description: "Agregar plantilla en la descripción de los tickets (Incidentes y Solicitudes).", Responsible: team, StartDate: start, EndDate: end, Progress: "100%"},
			{Description: "Informar al equipo MDA ante solicitudes de creación de PST no se procederá con dicha atención.", Responsible: team, StartDate: start, EndDate: end, Progress: "100%"},
			{Description: "Informar al equipo MDA sobre agregar en la descripción de los tickets, si la atención es para un usuario de Inland", Responsible: "Stefanini / Leonardo Valdizan", StartDate: start, EndDate: end, Progress: "100%"},
			{Description: "Revisar plan de renovación de equipos", Responsible: "Stefanini / Leonardo Valdizan – LDS / Richard Perez", StartDate: start, EndDate: end, Progress: "100%"},
		},
	}
}
