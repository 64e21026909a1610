package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/personal-blog/portfolio-api/internal/core/domain"
)

const (
	profilesCollection = "profiles"
	postsCollection    = "posts"
	skillsCollection   = "skills"
	projectsCollection = "projects"
)

// ProfileRepository stores the single site profile. Any document in the
// profiles collection is the profile; there is never more than one.
type ProfileRepository struct {
	c collection[domain.Profile]
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{c: newCollection(db, profilesCollection, func(p *domain.Profile, id string) { p.ID = id })}
}

func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	return r.c.findOne(ctx, bson.M{})
}

func (r *ProfileRepository) Upsert(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	set, err := profileSet(update)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		if _, err := r.EnsureDefault(ctx); err != nil {
			return nil, err
		}
		return r.Get(ctx)
	}

	// Fields not being set still get their defaults on first insert.
	onInsert, err := toM(domain.DefaultProfile())
	if err != nil {
		return nil, err
	}
	for k := range set {
		delete(onInsert, k)
	}

	doc := bson.M{"$set": set}
	if len(onInsert) > 0 {
		doc["$setOnInsert"] = onInsert
	}
	return r.c.updateOne(ctx, bson.M{}, doc, true)
}

// EnsureDefault inserts the default profile when none exists and reports whether it did.
func (r *ProfileRepository) EnsureDefault(ctx context.Context) (bool, error) {
	countCtx, cancel := withTimeout(ctx)
	defer cancel()

	n, err := r.c.col.CountDocuments(countCtx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count profiles: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	def := domain.DefaultProfile()
	if err := r.c.insert(ctx, &def); err != nil {
		return false, err
	}
	return true, nil
}

type PostRepository struct {
	c collection[domain.Post]
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{c: newCollection(db, postsCollection, func(p *domain.Post, id string) { p.ID = id })}
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	return r.c.find(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	return r.c.insert(ctx, p)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

type SkillRepository struct {
	c collection[domain.Skill]
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{c: newCollection(db, skillsCollection, func(s *domain.Skill, id string) { s.ID = id })}
}

func (r *SkillRepository) List(ctx context.Context) ([]domain.Skill, error) {
	return r.c.find(ctx, bson.M{}, bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	return r.c.insert(ctx, s)
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

type ProjectRepository struct {
	c collection[domain.Project]
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{c: newCollection(db, projectsCollection, func(p *domain.Project, id string) { p.ID = id })}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	return r.c.find(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.c.insert(ctx, p)
}

// Update overwrites every mutable field; created_at is preserved.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	oid, err := objectID(p.ID)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"name":         p.Name,
		"description":  p.Description,
		"technologies": p.Technologies,
		"live_link":    p.LiveLink,
		"github_link":  p.GitHubLink,
		"image":        p.Image,
		"featured":     p.Featured,
		"updated_at":   p.UpdatedAt,
	}
	return r.c.updateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, false)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.c.deleteByID(ctx, id)
}

// EnsureContentIndexes creates the indexes backing the listing sort orders.
func EnsureContentIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sorted := map[string]bson.D{
		postsCollection:    {{Key: "created_at", Value: -1}},
		skillsCollection:   {{Key: "category", Value: 1}, {Key: "name", Value: 1}},
		projectsCollection: {{Key: "created_at", Value: -1}},
	}
	for name, keys := range sorted {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return fmt.Errorf("create index on %s: %w", name, err)
		}
	}
	return nil
}

// profileSet is the $set document for update. A cleared image is stored as null.
func profileSet(update domain.ProfileUpdate) (bson.M, error) {
	set, err := toM(update)
	if err != nil {
		return nil, err
	}
	if update.ClearImage && update.Image == nil {
		if set == nil {
			set = bson.M{}
		}
		set["image"] = nil
	}
	return set, nil
}

func toM(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal update: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal update: %w", err)
	}
	return m, nil
}
