package kv

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Instrumented Store Decorator
// --------------------------------------------------------------------------

// instrumentedStore wraps another Store and counts every operation and
// every failed operation in the process-wide metrics set.
type instrumentedStore struct {
	inner  Store
	engine Implementation
}

// NewInstrumentedStore decorates a Store with per-operation metrics.
// Counters are labeled with the operation name and the engine identifier.
func NewInstrumentedStore(inner Store, engine Implementation) Store {
	return &instrumentedStore{inner: inner, engine: engine}
}

// count increments the op counter and, if err is non-nil, the error counter.
func (s *instrumentedStore) count(op string, err error) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`kv_ops_total{op=%q,engine=%q}`, op, s.engine)).Inc()
	if err != nil {
		metrics.GetOrCreateCounter(fmt.Sprintf(`kv_op_errors_total{op=%q,engine=%q}`, op, s.engine)).Inc()
	}
}

// WriteMetrics writes all collected store metrics in Prometheus text
// exposition format to w.
func WriteMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see kv.Store)
// --------------------------------------------------------------------------

func (s *instrumentedStore) Set(key string, value []byte) error {
	err := s.inner.Set(key, value)
	s.count("set", err)
	return err
}

func (s *instrumentedStore) Get(key string) ([]byte, bool, error) {
	value, loaded, err := s.inner.Get(key)
	s.count("get", err)
	return value, loaded, err
}

func (s *instrumentedStore) Has(key string) (bool, error) {
	loaded, err := s.inner.Has(key)
	s.count("has", err)
	return loaded, err
}

func (s *instrumentedStore) Delete(key string) error {
	err := s.inner.Delete(key)
	s.count("delete", err)
	return err
}

func (s *instrumentedStore) Info() (StoreInfo, error) {
	return s.inner.Info()
}

func (s *instrumentedStore) Close() error {
	return s.inner.Close()
}
