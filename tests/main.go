package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"meetwise/models"
)

// Manual driver for a running server: posts a sample meeting request to
// /receive and prints the resolved response.
func main() {
	addr := flag.String("addr", "http://localhost:5000", "server base URL")
	flag.Parse()

	req := models.ScheduleRequest{
		RequestID: uuid.New().String(),
		Datetime:  time.Now().Format("02-01-2006T15:04:05"),
		Location:  "IISc Bangalore",
		From:      "userone.amd@gmail.com",
		Attendees: []models.RequestAttendee{
			{Email: "usertwo.amd@gmail.com"},
			{Email: "userthree.amd@gmail.com"},
		},
		Subject:      "Agentic AI Project Status Update",
		EmailContent: "Hi team, let's meet on Thursday for 30 minutes to discuss the status of Agentic AI Project.",
	}

	payload, err := json.Marshal(req)
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	resp, err := http.Post(*addr+"/receive", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var out models.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("Failed to decode response (status %d): %v", resp.StatusCode, err)
	}

	fmt.Printf("Status: %d\n", resp.StatusCode)
	if out.Error != "" {
		fmt.Printf("No slot: %s\n", out.Error)
		return
	}
	fmt.Printf("Scheduled %s to %s (%s mins)\n", out.EventStart, out.EventEnd, out.DurationMins)
	fmt.Printf("Reasoning: %s\n", out.MetaData.Reasoning)
	for _, attendee := range out.Attendees {
		fmt.Printf("  %s: %d events\n", attendee.Email, len(attendee.Events))
	}
}
