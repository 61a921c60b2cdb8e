// File: internal/model/project.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project 是一筆外包案件；HasVacancies 由參與人數與 MaxParticipants 推導後持久化
type Project struct {
	ID              int             `db:"id" json:"id"`
	UserID          int             `db:"user_id" json:"userId"`
	Description     string          `db:"description" json:"description"`
	Budget          decimal.Decimal `db:"budget" json:"budget"`
	Deadline        time.Time       `db:"deadline" json:"deadline"`
	Status          string          `db:"status" json:"status"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	IsPublic        bool            `db:"is_public" json:"isPublic"`
	MaxParticipants int             `db:"max_participants" json:"maxParticipants"`
	HasVacancies    bool            `db:"has_vacancies" json:"hasVacancies"`

	// 查詢時填入，不對應欄位
	CurrentParticipants int             `db:"-" json:"currentParticipants"`
	Participants        []Participation `db:"-" json:"participants,omitempty"`
}

// ProjectPatch 只更新非 nil 欄位
type ProjectPatch struct {
	Description     *string
	Budget          *decimal.Decimal
	Deadline        *time.Time
	Status          *string
	IsPublic        *bool
	MaxParticipants *int
}

// Apply 將 patch 套用到 p
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.Deadline != nil {
		p.Deadline = patch.Deadline.UTC()
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.IsPublic != nil {
		p.IsPublic = *patch.IsPublic
	}
	if patch.MaxParticipants != nil {
		p.MaxParticipants = *patch.MaxParticipants
	}
}
