package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func baseURL() string {
	if url := os.Getenv("E2E_BASE_URL"); url != "" {
		return url
	}
	switch os.Getenv("ENV") {
	case "CI":
		return "http://core-app:8080"
	}
	return "http://localhost:8080"
}

type FilmRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ReleaseDate string      `json:"releaseDate"`
	Duration    int         `json:"duration"`
	Mpa         ReferenceID   `json:"mpa"`
	Genres      []ReferenceID `json:"genres"`
}

type ReferenceID struct {
	ID int64 `json:"id"`
}

type UserRequest struct {
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

type created struct {
	ID int64 `json:"id"`
}

func main() {
	fmt.Println("Starting E2E tests for Filmorate API...")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	if !waitForService(client) {
		os.Exit(1)
	}
	if err := run(client); err != nil {
		fmt.Printf("E2E flow failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n All E2E tests passed!")
}

func run(client *http.Client) error {
	fmt.Println("\n Step 1: Creating users...")
	alice, err := createUser(client, "alice")
	if err != nil {
		return err
	}
	bob, err := createUser(client, "bob")
	if err != nil {
		return err
	}

	fmt.Println("\n Step 2: Creating film...")
	var film created
	err = call(client, http.MethodPost, "/films", FilmRequest{
		Name:        "Inception",
		Description: "A thief who steals corporate secrets through dream-sharing.",
		ReleaseDate: "2010-07-08",
		Duration:    148,
		Mpa:         ReferenceID{ID: 3},
		Genres:      []ReferenceID{{ID: 2}},
	}, http.StatusOK, &film)
	if err != nil {
		return fmt.Errorf("create film: %w", err)
	}

	fmt.Println("\n Step 3: Liking film and befriending...")
	if err := call(client, http.MethodPut, fmt.Sprintf("/films/%d/like/%d", film.ID, alice), nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("like film: %w", err)
	}
	if err := call(client, http.MethodPut, fmt.Sprintf("/users/%d/friends/%d", alice, bob), nil, http.StatusOK, nil); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}

	fmt.Println("\n Step 4: Checking popular films...")
	var popular []created
	if err := call(client, http.MethodGet, "/films/popular?count=1", nil, http.StatusOK, &popular); err != nil {
		return fmt.Errorf("popular films: %w", err)
	}
	if len(popular) != 1 {
		return fmt.Errorf("popular films returned %d entries", len(popular))
	}
	fmt.Printf("Most popular film: %d\n", popular[0].ID)
	return nil
}

func waitForService(client *http.Client) bool {
	fmt.Println(" Waiting for service to be ready...")

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		resp, err := client.Get(baseURL() + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println(" Service is ready!")
				return true
			}
		}

		if i < maxRetries-1 {
			fmt.Printf(" Service not ready yet (attempt %d/%d)...\n", i+1, maxRetries)
			time.Sleep(2 * time.Second)
		}
	}

	fmt.Println(" Service didn't start in time")
	return false
}

func createUser(client *http.Client, login string) (int64, error) {
	var u created
	err := call(client, http.MethodPost, "/users", UserRequest{
		Email:    fmt.Sprintf("%s-%d@mail.ru", login, time.Now().UnixNano()),
		Login:    login,
		Birthday: "1990-01-01",
	}, http.StatusOK, &u)
	if err != nil {
		return 0, fmt.Errorf("create user %s: %w", login, err)
	}
	return u.ID, nil
}

func call(client *http.Client, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL()+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != want {
		return fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
