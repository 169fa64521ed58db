package crm

import "time"

// Клиент
type Customer struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Company   string    `bson:"company" json:"company"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Статусы лида
const (
	LeadStatusNew       = "New"
	LeadStatusConverted = "Converted"
)

// Лид
type Lead struct {
	ID             string     `bson:"_id" json:"id"`
	Name           string     `bson:"name" json:"name"`
	Email          string     `bson:"email" json:"email"`
	Source         string     `bson:"source" json:"source"`
	Status         string     `bson:"status" json:"status"`
	AssignedToID   string     `bson:"assigned_to_id,omitempty" json:"assigned_to_id,omitempty"`
	AssignedToName string     `bson:"assigned_to_name,omitempty" json:"assigned_to_name,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
	ConvertedAt    *time.Time `bson:"converted_at,omitempty" json:"converted_at,omitempty"`
	AssignedAt     *time.Time `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`
}

// Стадии сделки
const (
	StageQualification = "Qualification"
	StageProposal      = "Proposal"
	StageNegotiation   = "Negotiation"
	StageWon           = "Won"
	StageLost          = "Lost"
)

var Stages = []string{StageQualification, StageProposal, StageNegotiation, StageWon, StageLost}

func IsValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// Сделка, созданная из лида
type Opportunity struct {
	ID        string     `bson:"_id" json:"id"`
	LeadID    string     `bson:"lead_id" json:"lead_id"`
	Name      string     `bson:"name" json:"name"`
	Email     string     `bson:"email" json:"email"`
	Source    string     `bson:"source" json:"source"`
	Stage     string     `bson:"stage" json:"stage"`
	Amount    float64    `bson:"amount" json:"amount"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	ClosedAt  *time.Time `bson:"closed_at,omitempty" json:"closed_at,omitempty"`
}

// Приоритеты и статусы тикетов
const (
	TicketStatusOpen      = "Open"
	TicketPriorityDefault = "Medium"
)

// Срок SLA с момента создания тикета
const TicketSLA = 24 * time.Hour

// Тикет поддержки
type Ticket struct {
	ID          string    `bson:"_id" json:"ticket_id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	Issue       string    `bson:"issue" json:"issue"`
	Status      string    `bson:"status" json:"status"`
	Priority    string    `bson:"priority" json:"priority"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	SLADeadline time.Time `bson:"sla_deadline" json:"sla_deadline"`
}
