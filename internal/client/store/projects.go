package store

import (
	"context"
	"fmt"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// Projects is the project collection. The server returns the whole
// list at once, so the cursor always reports a single page.
type Projects struct {
	*Collection[api.Project]
	client *clientapi.Client
}

// NewProjects создает коллекцию проектов
func NewProjects(client *clientapi.Client) *Projects {
	p := &Projects{client: client}
	p.Collection = New[api.Project]("projects", projectResource{client: client}, func(proj api.Project) int64 {
		return proj.ID
	})
	return p
}

// Create создает проект и перечитывает список
func (p *Projects) Create(ctx context.Context, in api.ProjectCreate) DataResult[api.Project] {
	return p.Collection.Create(ctx, in)
}

// Update обновляет проект и перечитывает список
func (p *Projects) Update(ctx context.Context, id int64, in api.ProjectUpdate) DataResult[api.Project] {
	return p.Collection.Update(ctx, id, in)
}

// Complete переводит проект в completed и перечитывает состояние
func (p *Projects) Complete(ctx context.Context, id int64) Result {
	return p.transition(ctx, id, p.client.CompleteProject, "failed to complete project")
}

// Reopen возвращает проект в ongoing и перечитывает состояние
func (p *Projects) Reopen(ctx context.Context, id int64) Result {
	return p.transition(ctx, id, p.client.ReopenProject, "failed to reopen project")
}

func (p *Projects) transition(ctx context.Context, id int64, op func(context.Context, int64) (*api.Project, error), fallback string) Result {
	p.track(1)
	_, err := op(ctx, id)
	p.track(-1)
	if err != nil {
		return Result{Message: p.fail(err, fallback)}
	}

	p.Refresh(ctx)
	if cur, ok := p.Current(); ok && cur.ID == id {
		p.FetchOne(ctx, id)
	}
	return Result{Success: true}
}

// Ongoing returns the loaded projects still in progress.
func (p *Projects) Ongoing() []api.Project {
	return p.byStatus(api.ProjectStatusOngoing)
}

// Completed returns the loaded projects already finished.
func (p *Projects) Completed() []api.Project {
	return p.byStatus(api.ProjectStatusCompleted)
}

func (p *Projects) byStatus(status string) []api.Project {
	var out []api.Project
	for _, proj := range p.Items() {
		if proj.Status == status {
			out = append(out, proj)
		}
	}
	return out
}

// projectResource adapts the typed project endpoints to Resource.
type projectResource struct {
	client *clientapi.Client
}

func (r projectResource) List(ctx context.Context, query map[string]string) (Page[api.Project], error) {
	// Сервер пагинацию проектов не поддерживает: страница всегда одна
	listQuery := clientapi.Query{"status": query[FilterStatus]}
	resp, err := r.client.ListProjects(ctx, listQuery)
	if err != nil {
		return Page[api.Project]{}, err
	}
	return Page[api.Project]{
		Items:      resp.Projects,
		Total:      resp.Total,
		Page:       1,
		PageSize:   len(resp.Projects),
		TotalPages: 1,
	}, nil
}

func (r projectResource) Get(ctx context.Context, id int64) (api.Project, error) {
	proj, err := r.client.GetProject(ctx, id)
	if err != nil {
		return api.Project{}, err
	}
	return *proj, nil
}

func (r projectResource) Create(ctx context.Context, data any) (api.Project, error) {
	in, ok := data.(api.ProjectCreate)
	if !ok {
		return api.Project{}, fmt.Errorf("unexpected create payload %T", data)
	}
	proj, err := r.client.CreateProject(ctx, in)
	if err != nil {
		return api.Project{}, err
	}
	return *proj, nil
}

func (r projectResource) Update(ctx context.Context, id int64, data any) (api.Project, error) {
	in, ok := data.(api.ProjectUpdate)
	if !ok {
		return api.Project{}, fmt.Errorf("unexpected update payload %T", data)
	}
	proj, err := r.client.UpdateProject(ctx, id, in)
	if err != nil {
		return api.Project{}, err
	}
	return *proj, nil
}

func (r projectResource) Delete(ctx context.Context, id int64) error {
	return r.client.DeleteProject(ctx, id)
}
