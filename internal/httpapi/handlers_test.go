package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/nextstep-ai/guide-server/internal/advisor"
	"github.com/nextstep-ai/guide-server/internal/ai"
	"github.com/nextstep-ai/guide-server/internal/assessment"
	"github.com/nextstep-ai/guide-server/internal/auth"
	"github.com/nextstep-ai/guide-server/internal/education"
	"github.com/nextstep-ai/guide-server/internal/goals"
	"github.com/nextstep-ai/guide-server/internal/httpapi"
	"github.com/nextstep-ai/guide-server/internal/occupations"
)

func TestGoalsCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "9876543210")

	if status := env.doJSON(t, "GET", "/api/goals", "", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("unauthenticated list status = %d, want 401", status)
	}

	var created goals.Goal
	status := env.doJSON(t, "POST", "/api/goals", token, map[string]string{
		"text":      "Prepare for JEE Main",
		"relatedTo": "Software Developer",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("add status = %d, want 201", status)
	}
	if created.ID == "" || created.IsCompleted {
		t.Errorf("unexpected created goal: %+v", created)
	}

	if status := env.doJSON(t, "POST", "/api/goals", token, map[string]string{"text": ""}, nil); status != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", status)
	}

	var list []goals.Goal
	if status := env.doJSON(t, "GET", "/api/goals", token, nil, &list); status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	if len(list) != 1 {
		t.Fatalf("got %d goals, want 1", len(list))
	}

	var updated goals.Goal
	status = env.doJSON(t, "PUT", "/api/goals/"+created.ID, token, map[string]any{
		"text":        "Prepare for JEE Advanced",
		"isCompleted": true,
	}, &updated)
	if status != http.StatusOK {
		t.Fatalf("update status = %d", status)
	}
	if !updated.IsCompleted || updated.Text != "Prepare for JEE Advanced" {
		t.Errorf("unexpected updated goal: %+v", updated)
	}

	if status := env.doJSON(t, "PUT", "/api/goals/nonexistent", token, map[string]any{
		"text": "x",
	}, nil); status != http.StatusNotFound {
		t.Errorf("update missing goal status = %d, want 404", status)
	}

	// Another user cannot touch the goal.
	otherToken := env.login(t, "9876500000")
	if status := env.doJSON(t, "DELETE", "/api/goals/"+created.ID, otherToken, nil, nil); status != http.StatusNotFound {
		t.Errorf("foreign delete status = %d, want 404", status)
	}

	if status := env.doJSON(t, "DELETE", "/api/goals/"+created.ID, token, nil, nil); status != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", status)
	}
	if status := env.doJSON(t, "DELETE", "/api/goals/"+created.ID, token, nil, nil); status != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", status)
	}
}

func TestOccupationExplorer(t *testing.T) {
	env := newTestEnv(t)

	var root struct {
		Children occupations.Children `json:"children"`
	}
	if status := env.doJSON(t, "GET", "/api/occupations", "", nil, &root); status != http.StatusOK {
		t.Fatalf("root status = %d", status)
	}
	if len(root.Children.MajorGroups) != 2 {
		t.Errorf("got %d major groups, want 2", len(root.Children.MajorGroups))
	}

	var drilled struct {
		Selection   occupations.Selection    `json:"selection"`
		Breadcrumbs []occupations.Breadcrumb `json:"breadcrumbs"`
		Children    occupations.Children     `json:"children"`
	}
	if status := env.doJSON(t, "GET", "/api/occupations?major=2&subMajor=21", "", nil, &drilled); status != http.StatusOK {
		t.Fatalf("drill status = %d", status)
	}
	if len(drilled.Children.MinorGroups) != 1 || drilled.Children.MinorGroups[0].Code != "214" {
		t.Errorf("unexpected minor groups: %+v", drilled.Children.MinorGroups)
	}
	if len(drilled.Breadcrumbs) != 2 {
		t.Errorf("got %d breadcrumbs, want 2", len(drilled.Breadcrumbs))
	}

	if status := env.doJSON(t, "GET", "/api/occupations?major=1&subMajor=21", "", nil, nil); status != http.StatusBadRequest {
		t.Errorf("mismatched parent status = %d, want 400", status)
	}
}

func TestOccupationSearchAndPath(t *testing.T) {
	env := newTestEnv(t)

	var found struct {
		UnitGroups []occupations.UnitGroup `json:"unitGroups"`
	}
	if status := env.doJSON(t, "GET", "/api/occupations/search?q=legislators", "", nil, &found); status != http.StatusOK {
		t.Fatalf("search status = %d", status)
	}
	if len(found.UnitGroups) != 1 || found.UnitGroups[0].Code != "1111" {
		t.Errorf("unexpected search result: %+v", found.UnitGroups)
	}

	var path struct {
		Selection   occupations.Selection    `json:"selection"`
		Breadcrumbs []occupations.Breadcrumb `json:"breadcrumbs"`
	}
	if status := env.doJSON(t, "GET", "/api/occupations/path/2143", "", nil, &path); status != http.StatusOK {
		t.Fatalf("path status = %d", status)
	}
	want := occupations.Selection{Major: "2", SubMajor: "21", Minor: "214", Unit: "2143"}
	if path.Selection != want {
		t.Errorf("path selection = %+v, want %+v", path.Selection, want)
	}
	if len(path.Breadcrumbs) != 4 {
		t.Errorf("got %d breadcrumbs, want 4", len(path.Breadcrumbs))
	}

	if status := env.doJSON(t, "GET", "/api/occupations/path/9999", "", nil, nil); status != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", status)
	}
}

func TestOccupations_Unavailable(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	occ := occupations.NewService(failing.URL, "csv", failing.Client(), nil)
	if err := occ.Bootstrap(context.Background()); err == nil {
		t.Fatal("Bootstrap() succeeded against a failing source")
	}

	loader, err := education.NewLoader()
	if err != nil {
		t.Fatalf("education.NewLoader() error = %v", err)
	}

	srv := httpapi.NewServer(httpapi.Deps{
		Auth: auth.NewService(auth.NewMemoryUserStore(),
			auth.NewMemoryCredentialStore(time.Minute, time.Hour), "123456"),
		Occupations: occ,
		Education:   loader,
	})
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	env := &testEnv{ts: ts}

	for _, path := range []string{"/api/occupations", "/api/occupations/search?q=x", "/api/occupations/path/1111"} {
		if status := env.doJSON(t, "GET", path, "", nil, nil); status != http.StatusServiceUnavailable {
			t.Errorf("GET %s status = %d, want 503", path, status)
		}
	}
}

func TestDeepDive(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "9876543210")

	var dive advisor.OccupationDeepDive
	status := env.doJSON(t, "POST", "/api/occupations/deep-dive", token,
		map[string]string{"code": "2143"}, &dive)
	if status != http.StatusOK {
		t.Fatalf("deep dive status = %d", status)
	}
	if dive.MarketDemand != "High" {
		t.Errorf("MarketDemand = %q, want High", dive.MarketDemand)
	}

	if status := env.doJSON(t, "POST", "/api/occupations/deep-dive", token,
		map[string]string{"code": "0000"}, nil); status != http.StatusNotFound {
		t.Errorf("unknown code status = %d, want 404", status)
	}
	if status := env.doJSON(t, "POST", "/api/occupations/deep-dive", "",
		map[string]string{"code": "2143"}, nil); status != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", status)
	}
}

func TestEducationExplorer(t *testing.T) {
	env := newTestEnv(t)

	var root struct {
		Children education.Children `json:"children"`
	}
	if status := env.doJSON(t, "GET", "/api/education", "", nil, &root); status != http.StatusOK {
		t.Fatalf("root status = %d", status)
	}
	if len(root.Children.Curricula) != 5 {
		t.Errorf("got %d curricula, want 5", len(root.Children.Curricula))
	}

	var drilled struct {
		Breadcrumbs []education.Breadcrumb `json:"breadcrumbs"`
		Children    education.Children     `json:"children"`
	}
	path := "/api/education?curriculum=cbse&stream=cbse_science_mpc"
	if status := env.doJSON(t, "GET", path, "", nil, &drilled); status != http.StatusOK {
		t.Fatalf("drill status = %d", status)
	}
	if len(drilled.Children.UgOptions) != 2 {
		t.Errorf("got %d ug options, want 2", len(drilled.Children.UgOptions))
	}
	if len(drilled.Breadcrumbs) != 2 {
		t.Errorf("got %d breadcrumbs, want 2", len(drilled.Breadcrumbs))
	}

	if status := env.doJSON(t, "GET", "/api/education?curriculum=ib&stream=cbse_science_mpc", "", nil, nil); status != http.StatusBadRequest {
		t.Errorf("mismatched parent status = %d, want 400", status)
	}

	var exams struct {
		Exams []education.CompetitiveExam `json:"exams"`
	}
	if status := env.doJSON(t, "GET", "/api/education/exams", "", nil, &exams); status != http.StatusOK {
		t.Fatalf("exams status = %d", status)
	}
	if len(exams.Exams) != 12 {
		t.Errorf("got %d exams, want 12", len(exams.Exams))
	}
}

func TestMentorSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "9876543210")
	record := submitOne(t, env, token, "First")

	var sess advisor.MentorSession
	status := env.doJSON(t, "POST", "/api/mentor/sessions", token,
		map[string]string{"recordId": record.ID}, &sess)
	if status != http.StatusCreated {
		t.Fatalf("start session status = %d, want 201", status)
	}
	if sess.ID == "" {
		t.Fatal("session ID is empty")
	}

	if status := env.doJSON(t, "POST", "/api/mentor/sessions", token,
		map[string]string{"recordId": "missing"}, nil); status != http.StatusNotFound {
		t.Errorf("unknown record status = %d, want 404", status)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(env.ts.URL, "http") +
		"/api/mentor/sessions/" + sess.ID + "/ws?token=" + token
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := wsjson.Write(ctx, conn, map[string]string{"text": "How do I prepare for JEE?"}); err != nil {
		t.Fatalf("write message: %v", err)
	}

	var reply strings.Builder
	for {
		var out struct {
			Content string `json:"content"`
			Done    bool   `json:"done"`
			Error   string `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			t.Fatalf("read chunk: %v", err)
		}
		if out.Error != "" {
			t.Fatalf("mentor error: %s", out.Error)
		}
		reply.WriteString(out.Content)
		if out.Done {
			break
		}
	}
	if got := reply.String(); got != "Happy to help with that." {
		t.Errorf("reply = %q, want %q", got, "Happy to help with that.")
	}
}

// interruptedMentor fails the first mentor stream midway and answers
// normally afterwards. Every other call falls through to the scripted
// responses.
type interruptedMentor struct {
	scriptedProvider
	mu    sync.Mutex
	calls int
}

func (p *interruptedMentor) StreamComplete(ctx context.Context, req ai.CompletionRequest) (<-chan ai.StreamChunk, error) {
	if req.Task != ai.TaskMentor {
		return p.scriptedProvider.StreamComplete(ctx, req)
	}
	p.mu.Lock()
	p.calls++
	first := p.calls == 1
	p.mu.Unlock()
	if !first {
		return p.scriptedProvider.StreamComplete(ctx, req)
	}
	ch := make(chan ai.StreamChunk, 3)
	ch <- ai.StreamChunk{Content: "Half a thought"}
	ch <- ai.StreamChunk{Error: errors.New("stream interrupted")}
	ch <- ai.StreamChunk{Content: " that arrived late"}
	close(ch)
	return ch, nil
}

func TestMentorWS_StreamErrorRecovers(t *testing.T) {
	env := newTestEnvWith(t, &interruptedMentor{})
	token := env.login(t, "9876543210")
	record := submitOne(t, env, token, "First")

	var sess advisor.MentorSession
	if status := env.doJSON(t, "POST", "/api/mentor/sessions", token,
		map[string]string{"recordId": record.ID}, &sess); status != http.StatusCreated {
		t.Fatalf("start session status = %d", status)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(env.ts.URL, "http") +
		"/api/mentor/sessions/" + sess.ID + "/ws?token=" + token
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := wsjson.Write(ctx, conn, map[string]string{"text": "First question"}); err != nil {
		t.Fatalf("write message: %v", err)
	}
	for {
		var out struct {
			Content string `json:"content"`
			Done    bool   `json:"done"`
			Error   string `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			t.Fatalf("read chunk: %v", err)
		}
		if out.Error != "" {
			break
		}
		if out.Done {
			t.Fatal("stream finished without an error frame")
		}
	}

	// The next message on the same connection must still get a full reply.
	if err := wsjson.Write(ctx, conn, map[string]string{"text": "Second question"}); err != nil {
		t.Fatalf("write second message: %v", err)
	}
	var reply strings.Builder
	for {
		var out struct {
			Content string `json:"content"`
			Done    bool   `json:"done"`
			Error   string `json:"error"`
		}
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			t.Fatalf("read second reply: %v", err)
		}
		if out.Error != "" {
			t.Fatalf("second reply error: %s", out.Error)
		}
		reply.WriteString(out.Content)
		if out.Done {
			break
		}
	}
	if got := reply.String(); got != "Happy to help with that." {
		t.Errorf("second reply = %q, want %q", got, "Happy to help with that.")
	}

	// The interrupted reply's delivered text is in the history; the server
	// drains the stream before reading the next frame, so by now it is
	// recorded.
	stored, err := env.sessions.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", sess.ID, err)
	}
	var assistant []string
	for _, msg := range stored.Messages {
		if msg.Role == "assistant" {
			assistant = append(assistant, msg.Content)
		}
	}
	if len(assistant) == 0 || !strings.Contains(assistant[0], "Half a thought") {
		t.Errorf("assistant history = %q, want first entry to keep the interrupted reply", assistant)
	}
}

func TestMentorWS_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "9876543210")

	if status := env.doJSON(t, "GET", "/api/mentor/sessions/nonexistent/ws", token, nil, nil); status != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", status)
	}
}

func TestPhaseFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "9876543210")

	if status := env.doJSON(t, "GET", "/api/phase", "", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", status)
	}

	var cur struct {
		Phase assessment.Phase `json:"phase"`
	}
	if status := env.doJSON(t, "GET", "/api/phase", token, nil, &cur); status != http.StatusOK {
		t.Fatalf("get phase status = %d", status)
	}
	if cur.Phase != assessment.PhaseDashboard {
		t.Errorf("initial phase = %q, want %q", cur.Phase, assessment.PhaseDashboard)
	}

	setPhase := func(to assessment.Phase) int {
		t.Helper()
		return env.doJSON(t, "PUT", "/api/phase", token, map[string]any{"to": to}, &cur)
	}

	if status := setPhase(assessment.PhaseQuestionnaire); status != http.StatusOK {
		t.Fatalf("dashboard -> questionnaire status = %d", status)
	}

	// Results are only reachable through the loading step.
	if status := setPhase(assessment.PhaseResults); status != http.StatusBadRequest {
		t.Errorf("questionnaire -> results status = %d, want 400", status)
	}
	if status := env.doJSON(t, "GET", "/api/phase", token, nil, &cur); status != http.StatusOK {
		t.Fatalf("get phase status = %d", status)
	}
	if cur.Phase != assessment.PhaseQuestionnaire {
		t.Errorf("phase after rejected transition = %q, want %q", cur.Phase, assessment.PhaseQuestionnaire)
	}

	for _, to := range []assessment.Phase{assessment.PhaseLoadingResults, assessment.PhaseResults, assessment.PhaseDashboard} {
		if status := setPhase(to); status != http.StatusOK {
			t.Fatalf("transition to %q status = %d", to, status)
		}
	}

	if status := setPhase("time_travel"); status != http.StatusBadRequest {
		t.Errorf("unknown phase status = %d, want 400", status)
	}

	// Logout resets the flow; a fresh login starts back on the dashboard.
	if status := setPhase(assessment.PhaseOccupationsExplorer); status != http.StatusOK {
		t.Fatalf("dashboard -> occupations explorer status = %d", status)
	}
	if status := env.doJSON(t, "POST", "/api/auth/logout", token, nil, nil); status != http.StatusNoContent {
		t.Fatalf("logout status = %d", status)
	}
	token = env.login(t, "9876543210")
	if status := env.doJSON(t, "GET", "/api/phase", token, nil, &cur); status != http.StatusOK {
		t.Fatalf("get phase status = %d", status)
	}
	if cur.Phase != assessment.PhaseDashboard {
		t.Errorf("phase after re-login = %q, want %q", cur.Phase, assessment.PhaseDashboard)
	}
}

// offlineProvider fails every generative call so submissions run on the
// degraded path.
type offlineProvider struct {
	scriptedProvider
}

func (p *offlineProvider) Complete(context.Context, ai.CompletionRequest) (ai.CompletionResponse, error) {
	return ai.CompletionResponse{}, errors.New("model offline")
}

func (p *offlineProvider) StreamComplete(context.Context, ai.CompletionRequest) (<-chan ai.StreamChunk, error) {
	return nil, errors.New("model offline")
}

func TestSubmitAssessment_SingleAggregateWarning(t *testing.T) {
	env := newTestEnvWith(t, &offlineProvider{})
	token := env.login(t, "9876543210")

	var resp struct {
		Record  assessment.Record `json:"record"`
		Warning string            `json:"warning"`
	}
	status := env.doJSON(t, "POST", "/api/assessments", token, map[string]any{
		"assessmentName": "Offline Attempt",
		"answers":        fullAnswers(),
	}, &resp)
	if status != http.StatusOK {
		t.Fatalf("submit status = %d, want 200 with warning", status)
	}

	if resp.Warning == "" {
		t.Error("warning is empty, want one aggregate warning")
	}
	if resp.Record.ID == "" {
		t.Error("record ID is empty")
	}
	if resp.Record.Profile.Summary == "" {
		t.Error("profile summary is empty, scoring must not depend on the provider")
	}
	if len(resp.Record.CareerSuggestions) != 0 {
		t.Errorf("career suggestions = %v, want empty", resp.Record.CareerSuggestions)
	}
}
