// File: internal/model/participation.go
package model

import "time"

const (
	RoleOwner       = "owner"
	RoleParticipant = "participant"
)

type Participation struct {
	ID        int       `db:"id" json:"id"`
	ProjectID int       `db:"project_id" json:"projectId"`
	UserID    int       `db:"user_id" json:"userId"`
	Role      string    `db:"role" json:"role"`
	JoinedAt  time.Time `db:"joined_at" json:"joinedAt"`

	Username           string `db:"-" json:"username,omitempty"`
	ProjectDescription string `db:"-" json:"projectDescription,omitempty"`
}
