package e2e

import (
	"bytes"
	"campaign-lab/domain"
	"campaign-lab/infrastructure/http/server"
	"campaign-lab/internal"
	"campaign-lab/observability"
	"campaign-lab/repositories"
	"campaign-lab/runtime"
	"campaign-lab/runtime/workers"
	"campaign-lab/services"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// Envelope mirrors the JSON body of every /campaigns response.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

// Store exposes the repositories behind the running server so scenarios can
// check what reached durable storage.
type Store struct {
	Characters *repositories.CharacterRepository
	Progress   *repositories.ProgressRepository
	History    *repositories.HistoryRepository
	Records    *repositories.SessionRecordRepository
}

// BaseHTTPSuite runs the whole server in process on a throwaway badger
// directory seeded with the crypt campaign.
type BaseHTTPSuite struct {
	suite.Suite
	Config  Config
	Store   Store
	db      *badger.DB
	manager *runtime.Manager
	server  *httptest.Server
}

func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	s.db, err = badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLogger(nil))
	s.Require().NoError(err)

	content := repositories.NewContentRepository(s.db, logger)
	inventory := repositories.NewInventoryRepository(s.db, logger)
	s.Store = Store{
		Characters: repositories.NewCharacterRepository(s.db, logger),
		Progress:   repositories.NewProgressRepository(s.db, logger),
		History:    repositories.NewHistoryRepository(s.db, logger),
		Records:    repositories.NewSessionRecordRepository(s.db, logger),
	}

	seed, err := internal.ReadSeedFile(strings.NewReader(cryptSeed))
	s.Require().NoError(err)
	_, err = internal.Seed(seed, content, s.Store.Characters, inventory)
	s.Require().NoError(err)

	monitoring := observability.NewMonitoringManager(logger)
	sup := workers.NewSupervisor(logger, 50*time.Millisecond)
	adapter := services.NewStoreFlushAdapter(logger, s.Store.Progress, s.Store.History, s.Store.History, s.Store.Characters)
	s.manager = runtime.NewManager(logger, runtime.Config{
		AutosaveInterval:      s.Config.AutosaveInterval,
		SessionTimeout:        30 * time.Minute,
		MaxConcurrentSessions: s.Config.MaxSessions,
		SaveTimeout:           5 * time.Second,
	}, adapter, sup, monitoring)

	campaigns := services.NewCampaignService(logger, s.manager, content, s.Store.Characters, inventory, s.Store.Records, monitoring)
	play := services.NewPlayService(logger, content, s.Store.Characters, inventory, s.Store.Progress, s.Store.History)
	mux := http.NewServeMux()
	server.NewCampaignServer(logger, campaigns, play).RegisterRoutes(mux)
	s.server = httptest.NewServer(mux)
}

func (s *BaseHTTPSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.server != nil {
		s.server.Close()
	}
	if s.manager != nil {
		s.manager.Shutdown(ctx)
	}
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

// Call sends body as JSON and decodes the envelope. When out is not nil the
// data field is decoded into it.
func (s *BaseHTTPSuite) Call(name, method, path string, body any, out any) (int, Envelope) {
	t := s.T()
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)

	t.Logf("HTTP %s %s [%d] in %v", method, path, res.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		t.Logf("REQUEST:\n%s\nRESPONSE:\n%s", payload, raw)
	}

	var envelope Envelope
	s.Require().NoError(json.Unmarshal(raw, &envelope), "body: %s", raw)
	if out != nil && envelope.Success {
		s.Require().NoError(json.Unmarshal(envelope.Data, out))
	}
	return res.StatusCode, envelope
}

func (s *BaseHTTPSuite) Character(characterID string) domain.Character {
	character, err := s.Store.Characters.GetCharacter(characterID)
	s.Require().NoError(err)
	return character
}

const cryptSeed = `{
  "campaigns": [{
    "campaign": {"campaignId": "crypt", "title": "The Crypt", "status": "published"},
    "steps": [
      {"stepId": "S0", "campaignId": "crypt", "title": "Gate", "isStarting": true},
      {"stepId": "S1", "campaignId": "crypt", "title": "Hall"}
    ],
    "options": [
      {"optionId": "O1", "sourceStepId": "S0", "targetStepId": "S1", "text": "Push the gate"},
      {"optionId": "O2", "sourceStepId": "S1", "text": "Leave the crypt"},
      {"optionId": "O3", "sourceStepId": "S1", "targetStepId": "S1", "text": "Lift the slab",
       "requirement": {"stat": "STR", "operator": ">=", "value": "20"}}
    ],
    "outcomes": [
      {"outcomeId": "X1", "triggerOptionId": "O1", "kind": "CHANGE_STAT", "target": "STR", "value": 5,
       "description": "The gate gives way"}
    ]
  }],
  "characters": [
    {"characterId": "hero", "name": "Hero", "stats": {"STR": "10", "HP": "5"}},
    {"characterId": "rogue", "name": "Rogue", "stats": {"STR": "8"}, "inventory": [{"itemId": "lockpick"}]}
  ]
}`
