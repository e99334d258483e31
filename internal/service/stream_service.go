package service

import (
	"slices"

	"github.com/rs/zerolog"
	"github.com/stemsi/roster/internal/model"
)

type StreamService struct {
	log zerolog.Logger
}

func NewStreamService(log zerolog.Logger) *StreamService {
	return &StreamService{
		log: log.With().Str("component", "stream_service").Logger(),
	}
}

// SortStreams stable-sorts streams ascending by their group count at the time
// of the call.
func (s *StreamService) SortStreams(streams []*model.Stream) {
	slices.SortStableFunc(streams, model.ByGroupCount)
	s.log.Debug().Int("streams", len(streams)).Msg("sorted streams by group count")
}
