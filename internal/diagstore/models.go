// Package diagstore persists optimize() runs and the diagnostics they
// emit, the way the teacher's models package (models/models.go) shapes
// gorm records around an MCP session: one row per run, one row per
// diagnostic, linked by a foreign key instead of a nested JSON blob.
package diagstore

import "time"

// Run records a single call into the optimizer, one row per invocation
// of optiq.Optimize, mirroring the teacher's Session model (one row per
// MCP session, StagesCount/AppliesCount tallied alongside it).
type Run struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	SourceName  string `gorm:"type:varchar(255)"`
	UnsafeMath  bool
	UnsafeObject bool

	Changed     bool
	ErrorCount  int
	StartedAt   time.Time `gorm:"autoCreateTime"`
	FinishedAt  *time.Time

	Diagnostics []Diagnostic `gorm:"foreignKey:RunID"`
}

// Diagnostic is one row per diag.Diagnostic emitted during a Run,
// grounded on the teacher's Stage model's flat-column approach to
// structured data rather than its datatypes.JSON columns, since this
// module dropped gorm.io/datatypes (nothing here needs arbitrary JSON;
// a diagnostic is a fixed, already-typed shape).
type Diagnostic struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	RunID    string `gorm:"type:varchar(36);index"`
	Severity string `gorm:"type:varchar(10)"`
	Code     string `gorm:"type:varchar(30)"`
	Message  string `gorm:"type:text"`

	PositionFile   string `gorm:"type:varchar(255)"`
	PositionLine   int
	PositionColumn int

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Run) TableName() string        { return "runs" }
func (Diagnostic) TableName() string { return "diagnostics" }
