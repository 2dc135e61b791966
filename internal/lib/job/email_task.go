package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskCommunityWelcome greets a member after they join a community.
const TaskCommunityWelcome = "email:community_welcome"

type CommunityWelcomePayload struct {
	To            string `json:"to"`
	FirstName     string `json:"first_name"`
	CommunityID   string `json:"community_id"`
	CommunityName string `json:"community_name"`
}

func NewCommunityWelcomeTask(p CommunityWelcomePayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCommunityWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
