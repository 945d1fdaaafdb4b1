package store

import (
	"github.com/nonabeauty/storeadmin/internal/domain"
)

// The image store is a pure blob map keyed by generated id, holding
// data-URI payloads. It has no awareness of referents: deleting an
// entity does not delete its images, and detaching an image leaves any
// entity references dangling. That asymmetry is intentional, matching
// the data the legacy console produced.

func (s *Storage) Images() map[string]string {
	images := map[string]string{}
	s.Get(domain.KeyImages, &images)
	return images
}

func (s *Storage) SaveImages(images map[string]string) {
	s.Set(domain.KeyImages, images)
}

// Attach inserts a data-URI payload under id
func (s *Storage) Attach(id, dataURI string) {
	images := s.Images()
	images[id] = dataURI
	s.SaveImages(images)
}

// Detach removes the blob; references to id elsewhere are untouched
func (s *Storage) Detach(id string) {
	images := s.Images()
	delete(images, id)
	s.SaveImages(images)
}

func (s *Storage) ClearImages() {
	s.SaveImages(map[string]string{})
}
