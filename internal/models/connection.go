package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Connection is an undirected edge between two users, stored with the
// lexicographically smaller user ID first. The (user_low_id, user_high_id)
// unique index is the sole guard against duplicate or reversed edges.
type Connection struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"_id"`
	UserLowID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_connections_pair" json:"user1"`
	UserHighID string    `gorm:"type:uuid;not null;uniqueIndex:idx_connections_pair" json:"user2"`
	CreatedAt  time.Time `json:"createdAt"`

	UserLow  User `gorm:"foreignKey:UserLowID" json:"-"`
	UserHigh User `gorm:"foreignKey:UserHighID" json:"-"`
}

// TableName specifies the table name for GORM.
func (Connection) TableName() string {
	return "connections"
}

// BeforeCreate assigns a UUID primary key and re-orders the pair so the
// canonical invariant holds even if a caller bypassed OrderPair.
func (c *Connection) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.UserLowID > c.UserHighID {
		c.UserLowID, c.UserHighID = c.UserHighID, c.UserLowID
	}
	return nil
}

// OtherUserID returns whichever side of the edge is not the given user.
func (c *Connection) OtherUserID(userID string) string {
	if c.UserLowID == userID {
		return c.UserHighID
	}
	return c.UserLowID
}

// OrderPair canonicalizes an unordered user pair: the lexicographically
// smaller ID becomes low. Deterministic and symmetric.
func OrderPair(a, b string) (low, high string) {
	if a < b {
		return a, b
	}
	return b, a
}
