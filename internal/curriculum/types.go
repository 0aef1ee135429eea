// Package curriculum holds the 30-day accelerator program and tracks
// which daily tasks a founder has finished.
package curriculum

// Phase groups program days into the three arcs of the accelerator.
type Phase string

const (
	PhaseFoundation Phase = "Foundation"
	PhaseBuild      Phase = "Build"
	PhaseLaunch     Phase = "Launch"
)

// TaskType categorizes what kind of work a daily task is.
type TaskType string

const (
	TaskAction   TaskType = "action"
	TaskResearch TaskType = "research"
	TaskCreation TaskType = "creation"
	TaskOutreach TaskType = "outreach"
	TaskAnalysis TaskType = "analysis"
)

// Priority ranks a task within its day.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is one item of daily work. The ID is stable and is the key used
// for completion tracking.
type Task struct {
	ID            string
	Title         string
	Type          TaskType
	EstimatedTime string
	Priority      Priority
}

// Day is one day of the program.
type Day struct {
	Number       int
	Title        string
	Phase        Phase
	Description  string
	Objectives   []string
	Tasks        []Task
	Reflection   []string
	Deliverables []string

	// WorksheetID links the day's workshop to a catalog worksheet,
	// when one exists.
	WorksheetID string
}

// PhaseOf returns the phase a day number falls in. Days 1-10 are
// Foundation, 11-20 Build, 21-30 Launch.
func PhaseOf(day int) Phase {
	switch {
	case day <= 10:
		return PhaseFoundation
	case day <= 20:
		return PhaseBuild
	default:
		return PhaseLaunch
	}
}
