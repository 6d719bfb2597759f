package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

const (
	UserIDKey ContextKey = "user_id"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionLogin  AuditAction = "LOGIN"
	AuditActionAssign AuditAction = "ASSIGN"
	AuditActionUpload AuditAction = "UPLOAD"
	AuditActionSweep  AuditAction = "SWEEP"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    AuditAction        `bson:"action" json:"action"`
	Module    string             `bson:"module" json:"module"`       // The collection name
	RecordID  string             `bson:"record_id" json:"record_id"` // The ID of the record being modified
	ActorID   string             `bson:"actor_id" json:"actor_id"`   // User ID who performed the action
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Media holds the photo/video URL lists shared by venues, singers and cars.
type Media struct {
	Photos []string `bson:"photos" json:"photos"`
	Videos []string `bson:"videos" json:"videos"`
}

type Log struct {
	AppId        string    `bson:"app_id" json:"app_id"`
	Message      string    `bson:"message" json:"message"`
	IpAddress    string    `bson:"ip_address" json:"ip_address"`
	UserID       string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Caller       string    `bson:"caller,omitempty" json:"caller,omitempty"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
