package types

// Update types for partial mutations. Nil fields leave the stored value
// untouched; set fields replace it wholesale (arrays are not merged
// element-wise). Nullable references use double pointers so a caller can
// distinguish "leave alone" (nil) from "clear the link" (*T = nil).

// AreaUpdate carries partial area fields.
type AreaUpdate struct {
	Name  *string   `json:"name,omitempty"`
	Type  *AreaType `json:"type,omitempty"`
	Icon  *string   `json:"icon,omitempty"`
	Color *string   `json:"color,omitempty"`
	Order *int      `json:"order,omitempty"`
}

// ProjectUpdate carries partial project fields.
type ProjectUpdate struct {
	Name       *string        `json:"name,omitempty"`
	Type       *ProjectType   `json:"type,omitempty"`
	Status     *ProjectStatus `json:"status,omitempty"`
	Priority   *int           `json:"priority,omitempty"`
	Vision     *string        `json:"vision,omitempty"`
	NextAction *string        `json:"nextAction,omitempty"`
	Notes      *string        `json:"notes,omitempty"`
	Links      []ProjectLink  `json:"links,omitempty"`
	GoalID     **string       `json:"goalId,omitempty"`
	AreaID     **string       `json:"areaId,omitempty"`
}

// TaskUpdate carries partial task fields.
type TaskUpdate struct {
	Title        *string        `json:"title,omitempty"`
	ProjectID    **string       `json:"projectId,omitempty"`
	GoalID       **string       `json:"goalId,omitempty"`
	AreaID       **string       `json:"areaId,omitempty"`
	Area         *TaskArea      `json:"area,omitempty"`
	Category     *TaskCategory  `json:"category,omitempty"`
	Status       *TaskStatus    `json:"status,omitempty"`
	Priority     *TaskPriority  `json:"priority,omitempty"`
	DueDate      **string       `json:"dueDate,omitempty"`
	ScheduledFor **string       `json:"scheduledFor,omitempty"`
	TimeBlock    *TaskTimeBlock `json:"timeBlock,omitempty"`
	Mode         *TaskMode      `json:"mode,omitempty"`
}

// DealUpdate carries partial deal fields.
type DealUpdate struct {
	PipelineType *PipelineType `json:"pipelineType,omitempty"`
	Name         *string       `json:"name,omitempty"`
	Value        *float64      `json:"value,omitempty"`
	Stage        *string       `json:"stage,omitempty"`
	NextAction   *string       `json:"nextAction,omitempty"`
	ContactInfo  *string       `json:"contactInfo,omitempty"`
	Phone        *string       `json:"phone,omitempty"`
	Email        *string       `json:"email,omitempty"`
	Notes        *string       `json:"notes,omitempty"`
	GoalID       **string      `json:"goalId,omitempty"`
}

// NoteUpdate carries partial note fields.
type NoteUpdate struct {
	Title     *string       `json:"title,omitempty"`
	Content   *string       `json:"content,omitempty"`
	Category  *NoteCategory `json:"category,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
	ProjectID **string      `json:"projectId,omitempty"`
	AreaID    **string      `json:"areaId,omitempty"`
}

// ContentItemUpdate carries partial content item fields.
type ContentItemUpdate struct {
	Title        *string          `json:"title,omitempty"`
	Type         *ContentType     `json:"type,omitempty"`
	Platform     *ContentPlatform `json:"platform,omitempty"`
	Status       *ContentStatus   `json:"status,omitempty"`
	Content      *string          `json:"content,omitempty"`
	AssetURLs    []string         `json:"assetUrls,omitempty"`
	ScheduledFor **string         `json:"scheduledFor,omitempty"`
	PostedAt     **string         `json:"postedAt,omitempty"`
	GoalID       **string         `json:"goalId,omitempty"`
}

// TransactionUpdate carries partial transaction fields.
type TransactionUpdate struct {
	Type            *TransactionType     `json:"type,omitempty"`
	Category        *TransactionCategory `json:"category,omitempty"`
	Amount          *float64             `json:"amount,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Date            *string              `json:"date,omitempty"`
	Recurring       *bool                `json:"recurring,omitempty"`
	RecurringPeriod *string              `json:"recurringPeriod,omitempty"`
}

// MealPlanUpdate carries partial meal plan fields.
type MealPlanUpdate struct {
	Date      *string `json:"date,omitempty"`
	Breakfast *string `json:"breakfast,omitempty"`
	Lunch     *string `json:"lunch,omitempty"`
	Dinner    *string `json:"dinner,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ShoppingItemUpdate carries partial shopping item fields.
type ShoppingItemUpdate struct {
	Name      *string           `json:"name,omitempty"`
	Quantity  *string           `json:"quantity,omitempty"`
	Category  *ShoppingCategory `json:"category,omitempty"`
	Completed *bool             `json:"completed,omitempty"`
}

// FamilyEventUpdate carries partial family event fields.
type FamilyEventUpdate struct {
	Title *string          `json:"title,omitempty"`
	Date  *string          `json:"date,omitempty"`
	Type  *FamilyEventType `json:"type,omitempty"`
	Notes *string          `json:"notes,omitempty"`
}

// RoutineUpdate carries partial routine fields.
type RoutineUpdate struct {
	Name   *string       `json:"name,omitempty"`
	Type   *RoutineType  `json:"type,omitempty"`
	Items  []RoutineItem `json:"items,omitempty"`
	AreaID **string      `json:"areaId,omitempty"`
}

/// GoalUpdate carries partial goal fields. Type is deliberately absent: the
// goal type is fixed at creation.
type GoalUpdate struct {
	Title   *string     `json:"title,omitempty"`
	Why     *string     `json:"why,omitempty"`
	Quarter *Quarter    `json:"quarter,omitempty"`
	Year    *int        `json:"year,omitempty"`
	Status  *GoalStatus `json:"status,omitempty"`
	AreaID  **string    `json:"areaId,omitempty"`

	TargetMetric  *float64 `json:"targetMetric,omitempty"`
	CurrentMetric *float64 `json:"currentMetric,omitempty"`
	MetricUnit    *string  `json:"metricUnit,omitempty"`

	PipelineType *PipelineType `json:"pipelineType,omitempty"`
	TargetStage  *string       `json:"targetStage,omitempty"`

	ProjectIDs []string `json:"projectIds,omitempty"`
	Color      *string  `json:"color,omitempty"`
}

// WeeklyReviewUpdate carries partial weekly review fields.
type WeeklyReviewUpdate struct {
	WhatMovedNeedle *string         `json:"whatMovedNeedle,omitempty"`
	WhatDidntWork   *string         `json:"whatDidntWork,omitempty"`
	WhatFeltAligned *string         `json:"whatFeltAligned,omitempty"`
	WeeklyOutcomes  []WeeklyOutcome `json:"weeklyOutcomes,omitempty"`
	CompletedAt     *string         `json:"completedAt,omitempty"`
}
