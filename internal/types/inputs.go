package types

// Input types for create operations. The store assigns IDs and timestamps;
// callers never supply them.

// NewArea is the input for creating an area.
type NewArea struct {
	Name  string   `json:"name"`
	Type  AreaType `json:"type"`
	Icon  string   `json:"icon,omitempty"`
	Color string   `json:"color,omitempty"`
	Order int      `json:"order"`
}

// NewProject is the input for creating a project.
type NewProject struct {
	Name       string        `json:"name"`
	Type       ProjectType   `json:"type"`
	Status     ProjectStatus `json:"status"`
	Priority   int           `json:"priority"`
	Vision     string        `json:"vision"`
	NextAction string        `json:"nextAction"`
	Notes      string        `json:"notes"`
	Links      []ProjectLink `json:"links"`
	GoalID     *string       `json:"goalId"`
	AreaID     *string       `json:"areaId"`
}

// NewTask is the input for creating a task.
type NewTask struct {
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
}

// NewDeal is the input for creating a pipeline deal.
type NewDeal struct {
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
}

// NewNote is the input for creating a vault note.
type NewNote struct {
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	Tags      []string     `json:"tags"`
	ProjectID *string      `json:"projectId"`
	AreaID    *string      `json:"areaId"`
}

// NewContentItem is the input for creating a content item.
type NewContentItem struct {
	Title        string          `json:"title"`
	Type         ContentType     `json:"type"`
	Platform     ContentPlatform `json:"platform"`
	Status       ContentStatus   `json:"status"`
	Content      string          `json:"content"`
	AssetURLs    []string        `json:"assetUrls"`
	ScheduledFor *string         `json:"scheduledFor"`
	PostedAt     *string         `json:"postedAt"`
	GoalID       *string         `json:"goalId"`
}

// NewTransaction is the input for creating a transaction.
type NewTransaction struct {
	Type            TransactionType     `json:"type"`
	Category        TransactionCategory `json:"category"`
	Amount          float64             `json:"amount"`
	Description     string              `json:"description"`
	Date            string              `json:"date"`
	Recurring       bool                `json:"recurring"`
	RecurringPeriod string              `json:"recurringPeriod,omitempty"`
}

// NewMealPlan is the input for creating a meal plan.
type NewMealPlan struct {
	Date      string `json:"date"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Notes     string `json:"notes"`
}

// NewShoppingItem is the input for creating a shopping list item.
type NewShoppingItem struct {
	Name     string           `json:"name"`
	Quantity string           `json:"quantity"`
	Category ShoppingCategory `json:"category"`
}

// NewFamilyEvent is the input for creating a family event.
type NewFamilyEvent struct {
	Title string          `json:"title"`
	Date  string          `json:"date"`
	Type  FamilyEventType `json:"type"`
	Notes string          `json:"notes"`
}

// NewRoutine is the input for creating a routine.
type NewRoutine struct {
	Name   string        `json:"name"`
	Type   RoutineType   `json:"type"`
	Items  []RoutineItem `json:"items"`
	AreaID *string       `json:"areaId"`
}

// NewGoal is the input for creating a goal.
type NewGoal struct {
	Title   string     `json:"title"`
	Why     string     `json:"why"`
	Type    GoalType   `json:"type"`
	Quarter Quarter    `json:"quarter"`
	Year    int        `json:"year"`
	Status  GoalStatus `json:"status"`
	AreaID  *string    `json:"areaId"`

	TargetMetric  *float64 `json:"targetMetric,omitempty"`
	CurrentMetric *float64 `json:"currentMetric,omitempty"`
	MetricUnit    string   `json:"metricUnit,omitempty"`

	PipelineType PipelineType `json:"pipelineType,omitempty"`
	TargetStage  string       `json:"targetStage,omitempty"`

	ProjectIDs []string `json:"projectIds"`
	Color      string   `json:"color,omitempty"`
}

// NewWeeklyReview is the input for creating a weekly review.
type NewWeeklyReview struct {
	WeekStart       string          `json:"weekStart"`
	WhatMovedNeedle string          `json:"whatMovedNeedle"`
	WhatDidntWork   string          `json:"whatDidntWork"`
	WhatFeltAligned string          `json:"whatFeltAligned"`
	WeeklyOutcomes  []WeeklyOutcome `json:"weeklyOutcomes"`
	CompletedAt     string          `json:"completedAt,omitempty"`
}

// NewGoalActivity is the input for logging a goal activity.
type NewGoalActivity struct {
	GoalID         string           `json:"goalId"`
	Date           string           `json:"date"`
	Type           GoalActivityType `json:"type"`
	Description    string           `json:"description"`
	LinkedEntityID string           `json:"linkedEntityId,omitempty"`
	MetricChange   *float64         `json:"metricChange,omitempty"`
}

// ProcessInboxInput directs triage of an inbox capture into a real entity.
type ProcessInboxInput struct {
	Type      InboxItemType `json:"type"` // task, project, or note
	AreaID    *string       `json:"areaId,omitempty"`
	ProjectID *string       `json:"projectId,omitempty"`
	Title     string        `json:"title,omitempty"`
}

// CheckInUpdate carries partial daily check-in fields for an upsert.
// Nil pointers leave the existing value untouched.
type CheckInUpdate struct {
	MorningIntention   *string  `json:"morningIntention,omitempty"`
	SingleAction       *string  `json:"singleAction,omitempty"`
	GoalFocus          *string  `json:"goalFocus,omitempty"`
	MITIDs             []string `json:"mitIds,omitempty"`
	DidMoveGoalForward *bool    `json:"didMoveGoalForward,omitempty"`
	GoalMovedID        *string  `json:"goalMovedId,omitempty"`
	Insight            *string  `json:"insight,omitempty"`
	WhatLetGo          *string  `json:"whatLetGo,omitempty"`
}
