package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const expoPushURL = "https://exp.host/--/api/v2/push/send"

// expoBatchSize is the Expo push API's per-request message limit.
const expoBatchSize = 100

type pushMessage struct {
	To    string            `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Sound string            `json:"sound"`
}

// Expo delivers push notifications through Expo's push service.
type Expo struct {
	url    string
	client *http.Client
}

func NewExpo() *Expo {
	return &Expo{
		url:    expoPushURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Push fans a notification out to the given device tokens. Best effort: the
// first transport failure is returned but earlier batches stay delivered.
func (e *Expo) Push(tokens []string, title, body string, data map[string]string) error {
	for start := 0; start < len(tokens); start += expoBatchSize {
		end := start + expoBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}

		batch := make([]pushMessage, 0, end-start)
		for _, token := range tokens[start:end] {
			batch = append(batch, pushMessage{
				To:    token,
				Title: title,
				Body:  body,
				Data:  data,
				Sound: "default",
			})
		}

		payload, err := json.Marshal(batch)
		if err != nil {
			return err
		}
		resp, err := e.client.Post(e.url, "application/json", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("expo push returned %s", resp.Status)
		}
	}
	return nil
}
