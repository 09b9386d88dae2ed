package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"portfolio/internal/application/service"
	"portfolio/internal/domain/blog"
	"portfolio/internal/domain/contact"
	"portfolio/internal/domain/experience"
	"portfolio/internal/domain/profile"
	"portfolio/internal/domain/project"
	"portfolio/pkg/apperror"
)

// In-memory repositories backing the handler tests. They mirror the store
// contract the Postgres adapters implement: not-found and conflict come back
// as AppErrors, lists come back in the documented order.

type memProjectRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*project.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{items: map[uuid.UUID]*project.Project{}}
}

func (r *memProjectRepo) Save(_ context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Update(_ context.Context, p *project.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return apperror.NewNotFound("Project", p.ID.String())
	}
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id uuid.UUID) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("Project", id.String())
	}
	delete(r.items, id)
	return p, nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("Project", id.String())
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) List(_ context.Context) ([]*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*project.Project, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProjectRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = map[uuid.UUID]*project.Project{}
	return nil
}

func (r *memProjectRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type memExperienceRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*experience.Experience
}

func newMemExperienceRepo() *memExperienceRepo {
	return &memExperienceRepo{items: map[uuid.UUID]*experience.Experience{}}
}

func (r *memExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *memExperienceRepo) Update(_ context.Context, e *experience.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[e.ID]; !ok {
		return apperror.NewNotFound("Experience", e.ID.String())
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *memExperienceRepo) Delete(_ context.Context, id uuid.UUID) (*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("Experience", id.String())
	}
	delete(r.items, id)
	return e, nil
}

func (r *memExperienceRepo) FindByID(_ context.Context, id uuid.UUID) (*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("Experience", id.String())
	}
	cp := *e
	return &cp, nil
}

func (r *memExperienceRepo) List(_ context.Context) ([]*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*experience.Experience, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *memExperienceRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = map[uuid.UUID]*experience.Experience{}
	return nil
}

type memBlogRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*blog.Blog
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{items: map[uuid.UUID]*blog.Blog{}}
}

func (r *memBlogRepo) Save(_ context.Context, b *blog.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Slug == b.Slug {
			return apperror.NewConflict("Blog", "slug", b.Slug)
		}
	}
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *memBlogRepo) Update(_ context.Context, b *blog.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[b.ID]; !ok {
		return apperror.NewNotFound("Blog", b.ID.String())
	}
	for id, existing := range r.items {
		if id != b.ID && existing.Slug == b.Slug {
			return apperror.NewConflict("Blog", "slug", b.Slug)
		}
	}
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id uuid.UUID) (*blog.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("Blog", id.String())
	}
	delete(r.items, id)
	return b, nil
}

func (r *memBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*blog.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("Blog", id.String())
	}
	cp := *b
	return &cp, nil
}

func (r *memBlogRepo) FindBySlug(_ context.Context, slug string) (*blog.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.items {
		if b.Slug == slug {
			cp := *b
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Blog", slug)
}

func (r *memBlogRepo) List(_ context.Context) ([]*blog.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*blog.Blog, 0, len(r.items))
	for _, b := range r.items {
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out, nil
}

type memProfileRepo struct {
	mu sync.Mutex
	p  *profile.Profile
}

func (r *memProfileRepo) GetActive(_ context.Context) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.p == nil {
		return nil, apperror.NewNotFound("Profile", "active")
	}
	cp := *r.p
	return &cp, nil
}

func (r *memProfileRepo) Save(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.p = &cp
	return nil
}

func (r *memProfileRepo) Update(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.p == nil {
		return apperror.NewNotFound("Profile", p.ID.String())
	}
	cp := *p
	r.p = &cp
	return nil
}

func (r *memProfileRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
	return nil
}

type memContactRepo struct {
	mu    sync.Mutex
	items []*contact.Submission
}

func (r *memContactRepo) Save(_ context.Context, s *contact.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.items = append(r.items, &cp)
	return nil
}

func (r *memContactRepo) List(_ context.Context) ([]*contact.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*contact.Submission, len(r.items))
	copy(out, r.items)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// memFileStore records saved paths without touching disk. Paths follow the
// same "/<dir>/<prefix><n>-<name>" shape the local driver produces.
type memFileStore struct {
	mu    sync.Mutex
	saved []string
}

func (s *memFileStore) Save(_ context.Context, file io.Reader, dir, prefix, originalName string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := fmt.Sprintf("/%s/%s%d-%s", dir, prefix, len(s.saved), originalName)
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *memFileStore) SaveAs(_ context.Context, file io.Reader, dir, name string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := "/" + dir + "/" + name
	s.saved = append(s.saved, path)
	return path, nil
}

var _ service.FileStore = (*memFileStore)(nil)

// failingMailer simulates an unreachable SMTP relay.
type failingMailer struct {
	mu     sync.Mutex
	notify int
	acks   int
}

func (m *failingMailer) NotifyOwner(context.Context, *contact.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notify++
	return errors.New("smtp: connection refused")
}

func (m *failingMailer) Acknowledge(context.Context, *contact.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acks++
	return errors.New("smtp: connection refused")
}

var _ service.Mailer = (*failingMailer)(nil)
