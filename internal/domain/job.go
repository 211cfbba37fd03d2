package domain

type Job struct {
	ID            int64  `json:"id"`
	Job           string `json:"job"`
	TeamLeader    *int64 `json:"team_leader"`
	WorkSize      int32  `json:"work_size"`
	Collaborators string `json:"collaborators"`
	StartDate     *Date  `json:"start_date"`
	EndDate       *Date  `json:"end_date"`
	IsFinished    bool   `json:"is_finished"`
}
