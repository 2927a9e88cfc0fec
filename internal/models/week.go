package models

// WeekReply is the raw response of the beste.schule week journal
// endpoint for one ISO week. Fields the upstream omits decode to their
// zero values.
type WeekReply struct {
	Data WeekData `json:"data"`
}

type WeekData struct {
	Days []Day `json:"days"`
}

type Day struct {
	Id      string   `json:"id"`
	Date    string   `json:"date"`
	Lessons []Lesson `json:"lessons"`
	Notes   []Note   `json:"notes"`
}

type Note struct {
	Id          *string `json:"id"`
	For         string  `json:"for"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
	NotableType *string `json:"notable_type"`
}

type Teacher struct {
	Id       *int   `json:"id"`
	LocalId  string `json:"local_id"`
	Forename string `json:"forename"`
	Name     string `json:"name"`
}

type Subject struct {
	For     string   `json:"for"`
	Id      *int     `json:"id"`
	LocalId string   `json:"local_id"`
	Name    string   `json:"name"`
	Tags    []string `json:"tags"`
}

type TimeSlot struct {
	Id   *int   `json:"id"`
	Nr   int    `json:"nr"`
	From string `json:"from"`
	To   string `json:"to"`
}

type Group struct {
	Id      *int   `json:"id"`
	LocalId string `json:"local_id"`
	LevelId int    `json:"level_id"`
}

type Room struct {
	Id      *int   `json:"id"`
	LocalId string `json:"local_id"`
}

type Lesson struct {
	Id       *int      `json:"id"`
	Nr       int       `json:"nr"`
	Group    Group     `json:"group"`
	Subject  Subject   `json:"subject"`
	Status   string    `json:"status"`
	Rooms    []Room    `json:"rooms"`
	Teachers []Teacher `json:"teachers"`
	Time     TimeSlot  `json:"time"`
}

// StatusCanceled is the only cancellation marker the upstream emits
// (sic, American spelling).
const StatusCanceled = "canceled"

func (l *Lesson) Cancelled() bool {
	return l.Status == StatusCanceled
}

// DisplayName prefers the short subject label when the long name is
// missing or too wide for a grid cell.
func (l *Lesson) DisplayName() string {
	if l.Subject.Name == "" || len(l.Subject.Name) >= 15 {
		return l.Subject.LocalId
	}
	return l.Subject.Name
}
