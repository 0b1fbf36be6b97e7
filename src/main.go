package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/dictionary"
	"crosswarped.com/wordle/internal/logging"
	"crosswarped.com/wordle/internal/metrics"
)

const defaultWordLength = 5

type SolveRequest struct {
	Goal          string   `json:"goal"`
	WordLength    int      `json:"wordLength"`
	WordScope     string   `json:"wordScope"`
	Words         []string `json:"words"`
	ExcludedWords []string `json:"excludedWords"`
	Seed          uint64   `json:"seed"`
}

type GuessResponse struct {
	Word     string `json:"word"`
	Feedback string `json:"feedback"`
	Pool     int    `json:"pool"`
}

type SolveResponse struct {
	Success   bool            `json:"success"`
	RequestID string          `json:"requestId"`
	Guesses   []GuessResponse `json:"guesses"`
	Error     string          `json:"error,omitempty"`
}

// wordSource loads the words of a scope.
type wordSource interface {
	Load(ctx context.Context, scope string, wordLength int) ([]string, error)
}

type server struct {
	logger *zap.Logger
	words  wordSource

	// defaultWords returns the words used when a request names neither words nor a scope.
	defaultWords func(ctx context.Context, wordLength int) ([]string, error)

	mu      sync.Mutex
	solvers map[string]*wordle.Solver
}

func newServer(logger *zap.Logger, words wordSource, defaultWords func(context.Context, int) ([]string, error)) *server {
	return &server{
		logger:       logger,
		words:        words,
		defaultWords: defaultWords,
		solvers:      make(map[string]*wordle.Solver),
	}
}

// solver returns the solver cached under key, or builds one from the words returned by load. An empty key
// disables caching.
func (s *server) solver(ctx context.Context, key string, load func() ([]string, error), excluded []string, wordLength int) (*wordle.Solver, error) {
	if key != "" {
		s.mu.Lock()
		solver, ok := s.solvers[key]
		s.mu.Unlock()
		if ok {
			return solver, nil
		}
	}

	words, err := load()
	if err != nil {
		return nil, err
	}
	dict, err := dictionary.Build(dictionary.Params{Words: words, ExcludedWords: excluded, WordLength: wordLength})
	if err != nil {
		return nil, err
	}
	start := time.Now()
	solver, err := wordle.NewSolver(ctx, dict, wordle.SolverParams{Logger: s.logger})
	if err != nil {
		return nil, err
	}
	metrics.ObserveIndexBuild(time.Since(start))
	s.logger.Info("built solver", zap.String("key", key), zap.Int("words", dict.Len()))

	if key != "" {
		s.mu.Lock()
		s.solvers[key] = solver
		s.mu.Unlock()
	}
	return solver, nil
}

func (s *server) execute(ctx context.Context, req SolveRequest) (wordle.Trace, error) {
	if req.WordLength == 0 {
		req.WordLength = defaultWordLength
	}
	if req.WordLength < 1 {
		return nil, fmt.Errorf("wordLength must be positive")
	}
	req.Goal = strings.ToLower(strings.TrimSpace(req.Goal))
	if len(req.Goal) != req.WordLength {
		return nil, fmt.Errorf("goal must be %d letters long", req.WordLength)
	}

	var (
		key  string
		load func() ([]string, error)
	)
	switch {
	case len(req.Words) > 0:
		load = func() ([]string, error) { return req.Words, nil }
	case req.WordScope != "":
		key = "scope:" + req.WordScope + ":" + strconv.Itoa(req.WordLength)
		load = func() ([]string, error) {
			words, err := s.words.Load(ctx, req.WordScope, req.WordLength)
			if err != nil {
				return nil, fmt.Errorf("getWords: %w", err)
			}
			return words, nil
		}
	default:
		key = "default:" + strconv.Itoa(req.WordLength)
		load = func() ([]string, error) {
			words, err := s.defaultWords(ctx, req.WordLength)
			if err != nil {
				return nil, fmt.Errorf("loading default words: %w", err)
			}
			return words, nil
		}
	}
	if len(req.ExcludedWords) > 0 {
		key = ""
	}

	solver, err := s.solver(ctx, key, load, req.ExcludedWords, req.WordLength)
	if err != nil {
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	trace, err := solver.Solve(ctx, req.Goal, rand.New(rand.NewPCG(seed, seed)))
	metrics.ObserveSolve(trace, err)
	return trace, err
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (s *server) solveWordle(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	response := SolveResponse{RequestID: uuid.NewString()}
	logger := s.logger.With(zap.String("requestId", response.RequestID))

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		response.Error = fmt.Sprintf("Method %s not allowed", r.Method)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("error marshaling response", zap.Error(err))
		}
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("error parsing JSON body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		response.Error = fmt.Sprintf("Invalid JSON: %v", err)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("error marshaling response", zap.Error(err))
		}
		return
	}

	trace, err := s.execute(r.Context(), req)
	if err != nil {
		logger.Info("solve failed", zap.String("goal", req.Goal), zap.Error(err))
		response.Error = err.Error()
		if errors.Is(err, wordle.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusBadRequest)
		}
	} else {
		response.Success = true
		logger.Info("solved", zap.String("goal", req.Goal), zap.Int("guesses", len(trace)))
	}

	for _, g := range trace {
		response.Guesses = append(response.Guesses, GuessResponse{Word: g.Word, Feedback: g.Feedback.String(), Pool: g.Pool})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("error marshaling response", zap.Error(err))
	}
}

func main() {
	ctx := context.Background()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("logging.New: %v\n", err)
	}
	defer logger.Sync()

	source := dictionary.BigQuerySource{
		Project:  os.Getenv("BIGQUERY_PROJECT"),
		Table:    os.Getenv("BIGQUERY_TABLE"),
		Location: "US",
	}
	wordsFile := os.Getenv("WORDS_FILE")
	if wordsFile == "" {
		wordsFile = "words"
	}
	s := newServer(logger, source, func(ctx context.Context, wordLength int) ([]string, error) {
		return dictionary.LoadFile(ctx, wordsFile, wordLength)
	})

	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/solve", s.solveWordle); err != nil {
		log.Fatalf("funcframework.RegisterHTTPFunctionContext: %v\n", err)
	}
	if err := funcframework.RegisterHTTPFunctionContext(ctx, "/metrics", promhttp.Handler().ServeHTTP); err != nil {
		log.Fatalf("funcframework.RegisterHTTPFunctionContext: %v\n", err)
	}

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
