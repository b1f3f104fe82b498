package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/zeptofine/nodeflow/pkg/calculator"
	"github.com/zeptofine/nodeflow/pkg/nodeflow"
)

type workloadManager struct {
	mu         sync.Mutex
	flowCancel context.CancelFunc
}

var wm workloadManager

func (m *workloadManager) startFlow(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flowCancel != nil {
		http.Error(w, "flow workload already running", http.StatusConflict)
		return
	}
	rate := 50 * time.Millisecond
	if v := r.URL.Query().Get("rate_ms"); v != "" {
		if ms, err := time.ParseDuration(v + "ms"); err == nil {
			rate = ms
		}
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.flowCancel = cancel
	go func() { runFlowLoop(ctx, rate) }()
	w.WriteHeader(http.StatusAccepted)
	fmt.Fprintf(w, "flow workload started at %v\n", rate)
}

func (m *workloadManager) stopFlow(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flowCancel != nil {
		m.flowCancel()
		m.flowCancel = nil
	}
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, "flow workload stopped\n")
}

// runFlowLoop drives random numbers through a small calculator flow so the
// propagation counters keep moving.
func runFlowLoop(ctx context.Context, hz time.Duration) {
	registry := nodeflow.NewRegistry()
	if err := calculator.Register(registry); err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	editor := nodeflow.NewEditor(registry)
	sc := editor.Scene()

	a, err := sc.CreateNode("NumberSource")
	if err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	b, err := sc.CreateNode("NumberSource")
	if err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	sum, err := sc.CreateNode("Addition")
	if err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	display, err := sc.CreateNode("NumberDisplay")
	if err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	if _, err := sc.Connect(a.ID, 0, sum.ID, 0); err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	if _, err := sc.Connect(b.ID, 0, sum.ID, 1); err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}
	if _, err := sc.Connect(sum.ID, 0, display.ID, 0); err != nil {
		log.Printf("flow workload setup error: %v", err)
		return
	}

	left := a.Model.(*calculator.NumberSource)
	right := b.Model.(*calculator.NumberSource)

	ticker := time.NewTicker(hz)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			left.SetNumber(rand.Float64() * 100)
			right.SetNumber(rand.Float64() * 100)
		}
	}
}
