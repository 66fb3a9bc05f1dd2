package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/wmsConsultant/backend/internal/capability"
	"github.com/wmsConsultant/backend/internal/catalog"
	"github.com/wmsConsultant/backend/internal/config"
	"github.com/wmsConsultant/backend/internal/handler"
	"github.com/wmsConsultant/backend/internal/model"
	"github.com/wmsConsultant/backend/internal/service"
	"github.com/wmsConsultant/backend/internal/testutil"
	"github.com/wmsConsultant/backend/pkg/logger"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.DB(t)
	processes := catalog.Processes()
	if err := db.Create(&processes).Error; err != nil {
		t.Fatalf("seed processes: %v", err)
	}

	log := logger.NewNop()
	gen := capability.NoneGenerator{}
	search := capability.NoneSearcher{}
	genCfg := config.GenerationConfig{MinCount: 5, MaxCount: 25}

	clientService := service.NewClientService(db)
	projectService := service.NewProjectService(db)
	questionService := service.NewQuestionService(db)
	researchService := service.NewResearchService(db)

	r := gin.New()
	Setup(r, Deps{
		ClientHandler:    handler.NewClientHandler(clientService),
		ProjectHandler:   handler.NewProjectHandler(projectService),
		QuestionHandler:  handler.NewQuestionHandler(questionService, projectService, service.NewQuestionGenerator(gen, genCfg, log)),
		ResearchHandler:  handler.NewResearchHandler(researchService, clientService, service.NewResearcher(gen, search, log)),
		ProcessHandler:   handler.NewProcessHandler(db),
		DashboardHandler: handler.NewDashboardHandler(service.NewDashboardService(db)),
		HealthHandler:    handler.NewHealthHandler(gen, search),
		Logger:           log,
	})
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestConsultingWorkflow(t *testing.T) {
	r, _ := newTestServer(t)

	// Create two clients.
	w := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{"name": "Acme Corp", "industry": "Retail"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d %s", w.Code, w.Body.String())
	}
	var acme model.Client
	decode(t, w, &acme)

	w = doJSON(t, r, http.MethodPost, "/api/clients", gin.H{"name": "Globex", "industry": "Manufacturing"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create second client: %d", w.Code)
	}

	// Create a project under the first client.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/clients/%d/projects", acme.ID), gin.H{"name": "Phase 1 Assessment"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create project: %d %s", w.Code, w.Body.String())
	}
	var project model.Project
	decode(t, w, &project)
	if project.Status != model.ProjectStatusPlanning {
		t.Fatalf("project should default to planning, got %q", project.Status)
	}

	// Generate and persist five picking questions; with no AI capability
	// this samples the catalog.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%d/questions/generate", project.ID),
		gin.H{"category": "picking", "count": 5})
	if w.Code != http.StatusCreated {
		t.Fatalf("generate questions: %d %s", w.Code, w.Body.String())
	}
	var questions []model.Question
	decode(t, w, &questions)
	if len(questions) != 5 {
		t.Fatalf("expected 5 generated questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.ID == 0 || q.ProjectID != project.ID {
			t.Fatalf("generated question not persisted under project: %+v", q)
		}
		if q.AIGenerated {
			t.Fatalf("catalog drafts must not be flagged as ai generated")
		}
	}

	// Answer two of them.
	for _, q := range questions[:2] {
		w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/questions/%d/answer", q.ID),
			gin.H{"answer": "Discussed in workshop"})
		if w.Code != http.StatusOK {
			t.Fatalf("answer question %d: %d %s", q.ID, w.Code, w.Body.String())
		}
		var answered model.Question
		decode(t, w, &answered)
		if !answered.IsAnswered || answered.AnsweredAt == nil {
			t.Fatalf("answer did not stick: %+v", answered)
		}
	}

	// Dashboard reflects the workflow.
	w = doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", w.Code)
	}
	var summary service.Summary
	decode(t, w, &summary)
	if summary.TotalClients != 2 || summary.TotalProjects != 1 {
		t.Fatalf("dashboard totals off: %+v", summary)
	}
	if summary.TotalQuestions != 5 || summary.AnsweredQuestions != 2 {
		t.Fatalf("dashboard question counts off: %+v", summary)
	}
	if summary.CompletionRate != 40 {
		t.Fatalf("expected completion rate 40, got %d", summary.CompletionRate)
	}
	if len(summary.RecentProjects) != 1 || summary.RecentProjects[0].ClientName != "Acme Corp" {
		t.Fatalf("recent projects should name the client: %+v", summary.RecentProjects)
	}
}

func TestResearchEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/clients", gin.H{"name": "Acme Corp", "industry": "Retail"})
	var acme model.Client
	decode(t, w, &acme)

	// Comprehensive research appends one record per type, via the template
	// fallback when no capability is configured.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/clients/%d/research", acme.ID), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("conduct research: %d %s", w.Code, w.Body.String())
	}
	var records []model.ResearchRecord
	decode(t, w, &records)
	if len(records) != len(model.AllResearchTypes) {
		t.Fatalf("expected %d research records, got %d", len(model.AllResearchTypes), len(records))
	}
	for _, rec := range records {
		if rec.AIGenerated {
			t.Fatalf("fallback research must not be flagged as ai generated")
		}
		if len(rec.Sources) != 1 || rec.Sources[0] != model.SourcesUnavailable {
			t.Fatalf("expected unavailable sources sentinel: %v", rec.Sources)
		}
	}

	// A single valid type conducts one.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/clients/%d/research", acme.ID),
		gin.H{"research_type": model.ResearchCompanyOverview})
	if w.Code != http.StatusCreated {
		t.Fatalf("conduct single research: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &records)
	if len(records) != 1 || records[0].ResearchType != model.ResearchCompanyOverview {
		t.Fatalf("expected one company_overview record, got %+v", records)
	}

	// Invalid type is a validation error.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/clients/%d/research", acme.ID),
		gin.H{"research_type": "astrology"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown research type, got %d", w.Code)
	}

	// Research history blocks client deletion.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/clients/%d", acme.ID), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 deleting a client with research, got %d", w.Code)
	}
}

func TestErrorStatuses(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/clients/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing client, got %d", w.Code)
	}
	var body struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	decode(t, w, &body)
	if body.Error == "" || body.Code != 40402 {
		t.Fatalf("error envelope off: %+v", body)
	}

	w = doJSON(t, r, http.MethodPost, "/api/clients", gin.H{"industry": "Retail"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", w.Code)
	}

	// Questions require an existing project.
	w = doJSON(t, r, http.MethodPost, "/api/projects/999/questions", gin.H{"text": "orphan?"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for question under missing project, got %d", w.Code)
	}

	// Generation validates the category.
	w = doJSON(t, r, http.MethodPost, "/api/clients", gin.H{"name": "Acme"})
	var acme model.Client
	decode(t, w, &acme)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/clients/%d/projects", acme.ID), gin.H{"name": "P1"})
	var project model.Project
	decode(t, w, &project)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/projects/%d/questions/generate", project.ID),
		gin.H{"category": "teleportation"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d %s", w.Code, w.Body.String())
	}
}

func TestReferenceEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	var health struct {
		Status     string `json:"status"`
		AIServices struct {
			TextGeneration bool `json:"text_generation"`
			WebSearch      bool `json:"web_search"`
		} `json:"ai_services"`
	}
	decode(t, w, &health)
	if health.Status != "OK" {
		t.Fatalf("unexpected health status %q", health.Status)
	}
	if health.AIServices.TextGeneration || health.AIServices.WebSearch {
		t.Fatalf("unconfigured capabilities must report false")
	}

	w = doJSON(t, r, http.MethodGet, "/api/wms-processes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("wms-processes: %d", w.Code)
	}
	var processes []model.WMSProcess
	decode(t, w, &processes)
	if len(processes) != len(catalog.Categories()) {
		t.Fatalf("expected %d processes, got %d", len(catalog.Categories()), len(processes))
	}

	w = doJSON(t, r, http.MethodGet, "/api/wms-processes/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("categories: %d", w.Code)
	}
	var categories []catalog.Category
	decode(t, w, &categories)
	if len(categories) != 18 {
		t.Fatalf("expected 18 categories, got %d", len(categories))
	}
}
