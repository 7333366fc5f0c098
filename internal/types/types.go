package types

import "encoding/json"

// AreaType classifies a life domain.
type AreaType string

const (
	AreaLife  AreaType = "life"
	AreaWork  AreaType = "work"
	AreaMixed AreaType = "mixed"
)

// Area is an optional life/work domain tag attachable to goals, projects,
// tasks, notes, and routines.
type Area struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      AreaType `json:"type"`
	Icon      string   `json:"icon,omitempty"`
	Color     string   `json:"color,omitempty"`
	Order     int      `json:"order"`
	CreatedAt string   `json:"createdAt"`
}

// InboxItemType is the suggested classification for a raw capture.
type InboxItemType string

const (
	InboxUnknown InboxItemType = "unknown"
	InboxTask    InboxItemType = "task"
	InboxProject InboxItemType = "project"
	InboxNote    InboxItemType = "note"
	InboxIdea    InboxItemType = "idea"
)

// InboxItem is a raw capture awaiting triage into a task, project, or note.
type InboxItem struct {
	ID                 string        `json:"id"`
	RawText            string        `json:"rawText"`
	SuggestedType      InboxItemType `json:"suggestedType"`
	SuggestedAreaID    *string       `json:"suggestedAreaId"`
	SuggestedProjectID *string       `json:"suggestedProjectId"`
	Processed          bool          `json:"processed"`
	CreatedAt          string        `json:"createdAt"`
}

// ProjectType classifies a project.
type ProjectType string

const (
	ProjectLand      ProjectType = "land"
	ProjectCoaching  ProjectType = "coaching"
	ProjectAIProduct ProjectType = "ai-product"
	ProjectPersonal  ProjectType = "personal"
	ProjectOther     ProjectType = "other"
)

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectIdea      ProjectStatus = "idea"
	ProjectPlanning  ProjectStatus = "planning"
	ProjectBuilding  ProjectStatus = "building"
	ProjectLaunching ProjectStatus = "launching"
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
)

// ProjectLink is an external reference attached to a project.
type ProjectLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project is a multi-task initiative, optionally backing a goal.
// GoalID is a direct back-reference to a supporting goal; a goal's own
// ProjectIDs forward-list is an independent link mechanism and both
// directions count as "linked".
type Project struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Type       ProjectType   `json:"type"`
	Status     ProjectStatus `json:"status"`
	Priority   int           `json:"priority"` // 1 (highest) .. 5
	Vision     string        `json:"vision"`
	NextAction string        `json:"nextAction"`
	Notes      string        `json:"notes"`
	Links      []ProjectLink `json:"links"`
	GoalID     *string       `json:"goalId"`
	AreaID     *string       `json:"areaId"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
}

// TaskArea is the legacy free-enum domain tag on tasks. It coexists with
// the AreaID reference and the two are queried independently.
type TaskArea string

const (
	TaskAreaWork      TaskArea = "work"
	TaskAreaFamily    TaskArea = "family"
	TaskAreaAdmin     TaskArea = "admin"
	TaskAreaHealth    TaskArea = "health"
	TaskAreaSpiritual TaskArea = "spiritual"
)

// TaskStatus is the workflow state of a task. Transitions are deliberately
// unconstrained: any status may be written by any update.
type TaskStatus string

const (
	TaskTodo    TaskStatus = "todo"
	TaskDoing   TaskStatus = "doing"
	TaskDone    TaskStatus = "done"
	TaskSomeday TaskStatus = "someday"
)

// TaskPriority is a coarse task priority.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
)

// TaskTimeBlock is the part of day a task is slotted into.
type TaskTimeBlock string

const (
	BlockMorning     TaskTimeBlock = "morning"
	BlockAfternoon   TaskTimeBlock = "afternoon"
	BlockEvening     TaskTimeBlock = "evening"
	BlockUnscheduled TaskTimeBlock = "unscheduled"
)

// TaskMode is the working mode a task belongs to.
type TaskMode string

const (
	ModeDeepWork  TaskMode = "deep-work"
	ModeLogistics TaskMode = "logistics"
	ModeFamily    TaskMode = "family"
	ModeSales     TaskMode = "sales"
	ModeAll       TaskMode = "all"
)

// TaskCategory classifies a task by income stream / life bucket.
type TaskCategory string

const (
	CategoryCashflow     TaskCategory = "cashflow"
	CategoryLandSales    TaskCategory = "land-sales"
	CategoryIncubator    TaskCategory = "incubator"
	CategoryMiniProjects TaskCategory = "mini-projects"
	CategoryPersonal     TaskCategory = "personal"
)

// Task is the atomic unit of work. ScheduledFor (not DueDate) drives
// today/upcoming/inbox membership.
type Task struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	ProjectID    *string       `json:"projectId"`
	GoalID       *string       `json:"goalId"`
	AreaID       *string       `json:"areaId"`
	Area         TaskArea      `json:"area"`
	Category     TaskCategory  `json:"category"`
	Status       TaskStatus    `json:"status"`
	Priority     TaskPriority  `json:"priority"`
	DueDate      *string       `json:"dueDate"`
	ScheduledFor *string       `json:"scheduledFor"`
	TimeBlock    TaskTimeBlock `json:"timeBlock"`
	Mode         TaskMode      `json:"mode"`
	CreatedAt    string        `json:"createdAt"`
}

// DailyIntent is a free-form intention/reflection pair keyed by date.
type DailyIntent struct {
	Date       string `json:"date"`
	Intention  string `json:"intention"`
	Reflection string `json:"reflection"`
}

// PipelineType selects the stage vocabulary for a deal.
type PipelineType string

const (
	PipelineSalvaje PipelineType = "salvaje"
	PipelineAIBots  PipelineType = "ai-bots"
)

// Won stages per pipeline; "lost" is terminal for both.
const (
	StageSold = "sold"
	StageWon  = "won"
	StageLost = "lost"
)

// PipelineDeal is a kanban-style deal in one of the sales pipelines.
// Stage is a free string whose vocabulary depends on PipelineType.
type PipelineDeal struct {
	ID           string       `json:"id"`
	PipelineType PipelineType `json:"pipelineType"`
	Name         string       `json:"name"`
	Value        float64      `json:"value"`
	Stage        string       `json:"stage"`
	NextAction   string       `json:"nextAction"`
	ContactInfo  string       `json:"contactInfo"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Notes        string       `json:"notes"`
	GoalID       *string      `json:"goalId"`
	CreatedAt    string       `json:"createdAt"`
	UpdatedAt    string       `json:"updatedAt"`
}

// NoteCategory classifies a vault note.
type NoteCategory string

const (
	NoteIdeas     NoteCategory = "ideas"
	NoteScripts   NoteCategory = "scripts"
	NoteMeetings  NoteCategory = "meetings"
	NoteClients   NoteCategory = "clients"
	NoteBranding  NoteCategory = "branding"
	NoteSpiritual NoteCategory = "spiritual"
	NoteOther     NoteCategory = "other"
)

// Note is a vault entry.
type Note struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	Tags      []string     `json:"tags"`
	ProjectID *string      `json:"projectId"`
	AreaID    *string      `json:"areaId"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
}

// ContentType is the format of a content item.
type ContentType string

const (
	ContentPost     ContentType = "post"
	ContentReel     ContentType = "reel"
	ContentCarousel ContentType = "carousel"
	ContentCopy     ContentType = "copy"
	ContentTemplate ContentType = "template"
)

// ContentPlatform is the publishing target of a content item.
type ContentPlatform string

const (
	PlatformInstagram ContentPlatform = "instagram"
	PlatformLinkedIn  ContentPlatform = "linkedin"
	PlatformTwitter   ContentPlatform = "twitter"
	PlatformYouTube   ContentPlatform = "youtube"
	PlatformOther     ContentPlatform = "other"
)

// ContentStatus is the editorial state of a content item.
type ContentStatus string

const (
	ContentIdea      ContentStatus = "idea"
	ContentDraft     ContentStatus = "draft"
	ContentReady     ContentStatus = "ready"
	ContentScheduled ContentStatus = "scheduled"
	ContentPosted    ContentStatus = "posted"
)

// ContentItem is a piece of content in the publishing engine.
type ContentItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Type         ContentType     `json:"type"`
	Platform     ContentPlatform `json:"platform"`
	Status       ContentStatus   `json:"status"`
	Content      string          `json:"content"`
	AssetURLs    []string        `json:"assetUrls"`
	ScheduledFor *string         `json:"scheduledFor"`
	PostedAt     *string         `json:"postedAt"`
	GoalID       *string         `json:"goalId"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

// TransactionType distinguishes income from expense.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// TransactionCategory classifies a transaction by source/bucket.
type TransactionCategory string

const (
	TxnAIBots     TransactionCategory = "ai-bots"
	TxnLandSales  TransactionCategory = "land-sales"
	TxnConsulting TransactionCategory = "consulting"
	TxnPersonal   TransactionCategory = "personal"
	TxnBusiness   TransactionCategory = "business"
	TxnOther      TransactionCategory = "other"
)

// Transaction is a single money movement.
type Transaction struct {
	ID              string              `json:"id"`
	Type            TransactionType     `json:"type"`
	Category        TransactionCategory `json:"category"`
	Amount          float64             `json:"amount"`
	Description     string              `json:"description"`
	Date            string              `json:"date"`
	Recurring       bool                `json:"recurring"`
	RecurringPeriod string              `json:"recurringPeriod,omitempty"`
	CreatedAt       string              `json:"createdAt"`
}

// MealPlan holds one day's meals. At most one plan exists per date.
type MealPlan struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Notes     string `json:"notes"`
}

// ShoppingCategory classifies a shopping list item.
type ShoppingCategory string

const (
	ShopGroceries ShoppingCategory = "groceries"
	ShopBaby      ShoppingCategory = "baby"
	ShopHousehold ShoppingCategory = "household"
	ShopOther     ShoppingCategory = "other"
)

// ShoppingItem is a shopping list entry.
type ShoppingItem struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Quantity  string           `json:"quantity"`
	Category  ShoppingCategory `json:"category"`
	Completed bool             `json:"completed"`
	CreatedAt string           `json:"createdAt"`
}

// FamilyEventType classifies a family calendar entry.
type FamilyEventType string

const (
	EventAppointment FamilyEventType = "appointment"
	EventBaby        FamilyEventType = "baby"
	EventCouple      FamilyEventType = "couple"
	EventHealth      FamilyEventType = "health"
	EventOther       FamilyEventType = "other"
)

// FamilyEvent is a dated family calendar entry.
type FamilyEvent struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Date      string          `json:"date"`
	Type      FamilyEventType `json:"type"`
	Notes     string          `json:"notes"`
	CreatedAt string          `json:"createdAt"`
}

// RoutineType is the cadence of a routine.
type RoutineType string

const (
	RoutineMorning RoutineType = "morning"
	RoutineEvening RoutineType = "evening"
	RoutineWeekly  RoutineType = "weekly"
	RoutineMonthly RoutineType = "monthly"
)

// RoutineItem is one step within a routine checklist.
type RoutineItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// Routine is a recurring checklist.
type Routine struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      RoutineType   `json:"type"`
	Items     []RoutineItem `json:"items"`
	AreaID    *string       `json:"areaId"`
	CreatedAt string        `json:"createdAt"`
}

// HabitLog records completion of one routine item on one date.
// Keyed by (RoutineID, ItemID, Date); toggled, never duplicated.
type HabitLog struct {
	RoutineID string `json:"routineId"`
	ItemID    string `json:"itemId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalAchieved  GoalStatus = "achieved"
	GoalAbandoned GoalStatus = "abandoned"
)

// GoalType selects the progress algorithm for a goal. It is fixed at
// creation in practice.
type GoalType string

const (
	GoalNumeric  GoalType = "numeric"
	GoalProject  GoalType = "project"
	GoalPipeline GoalType = "pipeline"
	GoalHabit    GoalType = "habit"
)

// Quarter is a calendar quarter label.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Goal is a quarter-scoped objective ("north star") with a type-specific
// progress metric. CurrentMetric is only meaningful for numeric goals;
// progress for every other type is derived, never stored.
type Goal struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Why     string     `json:"why"`
	Type    GoalType   `json:"type"`
	Quarter Quarter    `json:"quarter"`
	Year    int        `json:"year"`
	Status  GoalStatus `json:"status"`
	AreaID  *string    `json:"areaId"`

	// Numeric goals
	TargetMetric  *float64 `json:"targetMetric,omitempty"`
	CurrentMetric *float64 `json:"currentMetric,omitempty"`
	MetricUnit    string   `json:"metricUnit,omitempty"`

	// Pipeline goals
	PipelineType PipelineType `json:"pipelineType,omitempty"`
	TargetStage  string       `json:"targetStage,omitempty"`

	ProjectIDs []string `json:"projectIds"`

	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// GoalActivityType classifies a goal activity log entry.
type GoalActivityType string

const (
	ActivityTaskCompleted   GoalActivityType = "task_completed"
	ActivityMetricUpdated   GoalActivityType = "metric_updated"
	ActivityProjectProgress GoalActivityType = "project_progress"
	ActivityPipelineMoved   GoalActivityType = "pipeline_moved"
	ActivityManualLog       GoalActivityType = "manual_log"
)

// GoalActivity is an append-only log row. It is the sole signal behind
// ignored-goal detection, heatmaps, and habit-goal progress; it is never
// mutated and only removed when its goal is deleted.
type GoalActivity struct {
	ID             string           `json:"id"`
	GoalID         string           `json:"goalId"`
	Date           string           `json:"date"`
	Type           GoalActivityType `json:"type"`
	Description    string           `json:"description"`
	LinkedEntityID string           `json:"linkedEntityId,omitempty"`
	MetricChange   *float64         `json:"metricChange,omitempty"`
	CreatedAt      string           `json:"createdAt"`
}

// WeeklyOutcome is one of the (at most five) outcomes planned for a week.
type WeeklyOutcome struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	GoalID        *string  `json:"goalId"`
	IsCompleted   bool     `json:"isCompleted"`
	LinkedTaskIDs []string `json:"linkedTaskIds"`
}

// WeeklyReview is one record per week, keyed by the Monday week start.
type WeeklyReview struct {
	ID              string          `json:"id"`
	WeekStart       string          `json:"weekStart"`
	WhatMovedNeedle string          `json:"whatMovedNeedle"`
	WhatDidntWork   string          `json:"whatDidntWork"`
	WhatFeltAligned string          `json:"whatFeltAligned"`
	WeeklyOutcomes  []WeeklyOutcome `json:"weeklyOutcomes"`
	CompletedAt     string          `json:"completedAt,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

// DailyCheckIn is one record per calendar date, upserted by date key.
// MITIDs holds at most three task IDs.
type DailyCheckIn struct {
	Date string `json:"date"`

	// Morning
	MorningIntention string   `json:"morningIntention"`
	SingleAction     string   `json:"singleAction"`
	GoalFocus        *string  `json:"goalFocus"`
	MITIDs           []string `json:"mitIds"`

	// Evening
	DidMoveGoalForward bool    `json:"didMoveGoalForward"`
	GoalMovedID        *string `json:"goalMovedId,omitempty"`
	Insight            string  `json:"insight"`
	WhatLetGo          string  `json:"whatLetGo"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppState is the whole persisted world: every collection in one object,
// serialized as a single blob.
type AppState struct {
	Areas      []Area      `json:"areas"`
	InboxItems []InboxItem `json:"inboxItems"`

	Projects      []Project      `json:"projects"`
	Tasks         []Task         `json:"tasks"`
	DailyIntents  []DailyIntent  `json:"dailyIntents"`
	Deals         []PipelineDeal `json:"deals"`
	Notes         []Note         `json:"notes"`
	ContentItems  []ContentItem  `json:"contentItems"`
	Transactions  []Transaction  `json:"transactions"`
	MealPlans     []MealPlan     `json:"mealPlans"`
	ShoppingItems []ShoppingItem `json:"shoppingItems"`
	FamilyEvents  []FamilyEvent  `json:"familyEvents"`
	Routines      []Routine      `json:"routines"`
	HabitLogs     []HabitLog     `json:"habitLogs"`

	Goals          []Goal         `json:"goals"`
	WeeklyReviews  []WeeklyReview `json:"weeklyReviews"`
	DailyCheckIns  []DailyCheckIn `json:"dailyCheckIns"`
	GoalActivities []GoalActivity `json:"goalActivities"`
}

// MarshalJSON ensures nil collections in AppState marshal as [] not null,
// so a round-tripped blob stays structurally stable.
func (s AppState) MarshalJSON() ([]byte, error) {
	if s.Areas == nil {
		s.Areas = []Area{}
	}
	if s.InboxItems == nil {
		s.InboxItems = []InboxItem{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.DailyIntents == nil {
		s.DailyIntents = []DailyIntent{}
	}
	if s.Deals == nil {
		s.Deals = []PipelineDeal{}
	}
	if s.Notes == nil {
		s.Notes = []Note{}
	}
	if s.ContentItems == nil {
		s.ContentItems = []ContentItem{}
	}
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.MealPlans == nil {
		s.MealPlans = []MealPlan{}
	}
	if s.ShoppingItems == nil {
		s.ShoppingItems = []ShoppingItem{}
	}
	if s.FamilyEvents == nil {
		s.FamilyEvents = []FamilyEvent{}
	}
	if s.Routines == nil {
		s.Routines = []Routine{}
	}
	if s.HabitLogs == nil {
		s.HabitLogs = []HabitLog{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.WeeklyReviews == nil {
		s.WeeklyReviews = []WeeklyReview{}
	}
	if s.DailyCheckIns == nil {
		s.DailyCheckIns = []DailyCheckIn{}
	}
	if s.GoalActivities == nil {
		s.GoalActivities = []GoalActivity{}
	}
	type Alias AppState
	return json.Marshal(Alias(s))
}

// Clone returns a deep copy of the state. Mutations operate on a clone and
// swap it in atomically so readers never observe a partial apply.
func (s *AppState) Clone() *AppState {
	data, err := json.Marshal(s)
	if err != nil {
		// AppState contains only JSON-serializable fields; this cannot fail
		// for a well-formed state.
		panic(err)
	}
	var out AppState
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}
