//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("HIREPIPE_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:8080"
}

func tenant() string {
	if v := os.Getenv("HIREPIPE_TEST_TENANT"); strings.TrimSpace(v) != "" {
		return v
	}
	return "demo-employer"
}

func TestReviewFlowIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	reviewerEmail := fmt.Sprintf("integration_%d@example.com", time.Now().UnixNano())
	password := "Secret123!"

	var registerResp struct {
		Token    string `json:"token"`
		TenantID string `json:"tenant_id"`
		UserID   string `json:"user_id"`
	}
	doPost(t, client, base+"/api/auth/register", "", map[string]any{
		"email":      reviewerEmail,
		"password":   password,
		"tenantName": fmt.Sprintf("Tenant %d", time.Now().UnixNano()),
	}, &registerResp)
	if registerResp.Token == "" || registerResp.UserID == "" {
		t.Fatalf("unexpected register response: %+v", registerResp)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	doPost(t, client, base+"/api/auth/login", "", map[string]string{
		"email":    reviewerEmail,
		"password": password,
	}, &loginResp)
	token := loginResp.Token
	if token == "" {
		t.Fatalf("login did not return token")
	}

	var list struct {
		Rows []struct {
			ID string `json:"id"`
		} `json:"rows"`
		Total       int  `json:"total"`
		HasNextPage bool `json:"hasNextPage"`
	}
	doGet(t, client, base+"/api/take-home/responses?pageSize=5", &list)
	if len(list.Rows) == 0 {
		t.Fatalf("expected seeded responses, got total=%d", list.Total)
	}
	targetID := list.Rows[0].ID

	var statuses []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	doGet(t, client, base+"/api/take-home/review-statuses", &statuses)
	if len(statuses) == 0 {
		t.Fatalf("expected review statuses")
	}
	statusID := statuses[0].ID

	var updateResp struct {
		Success bool `json:"success"`
		Updated int  `json:"updated"`
	}
	doPost(t, client, base+"/api/update-status", token, map[string]any{
		"responseId":     targetID,
		"reviewStatusId": statusID,
	}, &updateResp)
	if !updateResp.Success || updateResp.Updated != 1 {
		t.Fatalf("unexpected update response: %+v", updateResp)
	}

	var rec struct {
		ID           string `json:"id"`
		ReviewStatus *struct {
			ID string `json:"id"`
		} `json:"reviewStatus"`
	}
	doGet(t, client, base+"/api/take-home/responses/"+targetID, &rec)
	if rec.ReviewStatus == nil || rec.ReviewStatus.ID != statusID {
		t.Fatalf("review status not applied: %+v", rec)
	}

	var bulkResp struct {
		Success bool `json:"success"`
		Updated int  `json:"updated"`
	}
	doPost(t, client, base+"/api/bulk-status", token, map[string]any{
		"ids":            []string{targetID},
		"reviewStatusId": nil,
	}, &bulkResp)
	if !bulkResp.Success || bulkResp.Updated != 1 {
		t.Fatalf("unexpected bulk response: %+v", bulkResp)
	}

	doGet(t, client, base+"/api/take-home/responses/"+targetID, &rec)
	if rec.ReviewStatus != nil {
		t.Fatalf("review status not cleared: %+v", rec)
	}
}

func doPost(t *testing.T, client *http.Client, url, token string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-tenant", tenant())
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}

func doGet(t *testing.T, client *http.Client, url string, out any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("x-tenant", tenant())
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http get %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
