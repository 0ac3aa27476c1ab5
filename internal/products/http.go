package products

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ProductHub/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ProductHub API is running"))
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) error {
	q := parseListQuery(r.URL.Query())
	kit.WriteJSON(w, http.StatusOK, q.apply(s.Store.List()))
	return nil
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request) error {
	kit.WriteJSON(w, http.StatusOK, computeStats(s.Store.List()))
	return nil
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) error {
	p, ok := s.Store.Get(chi.URLParam(r, "id"))
	if !ok {
		return kit.NotFound("product not found")
	}
	kit.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) error {
	in, err := decodeProductInput(w, r)
	if err != nil {
		return err
	}

	p := in.newProduct("p_" + uuid.NewString())
	s.Store.Append(p)

	if s.Log != nil {
		s.Log.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	}
	kit.WriteJSON(w, http.StatusCreated, p)
	return nil
}

// update validates the body before looking the record up, so an invalid body
// on an unknown id reports 400 rather than 404.
func (s *Server) update(w http.ResponseWriter, r *http.Request) error {
	in, err := decodeProductInput(w, r)
	if err != nil {
		return err
	}

	id := chi.URLParam(r, "id")
	prev, ok := s.Store.Get(id)
	if !ok {
		return kit.NotFound("product not found")
	}

	p, ok := s.Store.Replace(id, in.mergeInto(prev))
	if !ok {
		return kit.NotFound("product not found")
	}

	if s.Log != nil {
		s.Log.Info("product updated", zap.String("id", id))
	}
	kit.WriteJSON(w, http.StatusOK, p)
	return nil
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")
	if !s.Store.Remove(id) {
		return kit.NotFound("product not found")
	}

	if s.Log != nil {
		s.Log.Info("product deleted", zap.String("id", id))
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
