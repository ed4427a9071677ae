package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/devconnect/internal/models"
)

// CreateProject вставляет новый проект и возвращает его UID.
func (s *Storage) CreateProject(ctx context.Context, project models.Project) (string, error) {
	const op = "storage.CreateProject"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO projects (owner_uid, title, description, link)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid`
	if err := s.DB.QueryRowContext(ctx, query,
		project.OwnerUID, project.Title, project.Description, project.Link).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetProject возвращает проект по UID вместе с именем владельца
// и комментариями в порядке добавления.
func (s *Storage) GetProject(ctx context.Context, projectUID string) (*models.Project, error) {
	const op = "storage.GetProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.uid, p.owner_uid, u.name, p.title, p.description, p.link,
			      p.created_at, p.updated_at
			  FROM projects p
			  JOIN users u ON u.uid = p.owner_uid
			  WHERE p.uid = $1`
	p := &models.Project{}
	row := s.DB.QueryRowContext(ctx, query, projectUID)
	var link sql.NullString
	if err := row.Scan(&p.UID, &p.OwnerUID, &p.OwnerName, &p.Title, &p.Description,
		&link, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Link = link.String

	comments, err := s.listComments(ctx, projectUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Comments = comments
	return p, nil
}

// ListProjects возвращает все проекты с именем владельца и комментариями,
// в порядке создания.
func (s *Storage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	const op = "storage.ListProjects"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.uid, p.owner_uid, u.name, p.title, p.description, p.link,
			      p.created_at, p.updated_at
			  FROM projects p
			  JOIN users u ON u.uid = p.owner_uid
			  ORDER BY p.created_at, p.uid`
	projects, err := s.queryProjects(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.attachComments(ctx, projects); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return projects, nil
}

// SearchProjectsByTitle возвращает проекты, в названии которых встречается
// подстрока q без учета регистра.
func (s *Storage) SearchProjectsByTitle(ctx context.Context, q string) ([]*models.Project, error) {
	const op = "storage.SearchProjectsByTitle"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.uid, p.owner_uid, u.name, p.title, p.description, p.link,
			      p.created_at, p.updated_at
			  FROM projects p
			  JOIN users u ON u.uid = p.owner_uid
			  WHERE p.title ILIKE '%' || $1 || '%'
			  ORDER BY p.created_at, p.uid`
	projects, err := s.queryProjects(ctx, query, escapeLike(q))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.attachComments(ctx, projects); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return projects, nil
}

// AddComment добавляет комментарий к проекту и возвращает созданную запись.
// Вставка и обновление updated_at проекта выполняются в одной транзакции,
// конкурентные добавления не теряются.
func (s *Storage) AddComment(ctx context.Context, projectUID, authorUID, text string) (*models.Comment, error) {
	const op = "storage.AddComment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var exists bool
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE uid = $1)`, projectUID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, ErrProjectNotFound)
	}

	c := &models.Comment{
		ProjectUID: projectUID,
		AuthorUID:  authorUID,
		Text:       text,
	}
	// имя автора возвращается вместе с комментарием, как и при чтении проекта
	if err = tx.QueryRowContext(ctx,
		`SELECT name FROM users WHERE uid = $1`, authorUID).Scan(&c.AuthorName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO comments (project_uid, author_uid, text)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at`
	if err = tx.QueryRowContext(ctx, query, projectUID, authorUID, text).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE projects SET updated_at = now() WHERE uid = $1`, projectUID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// queryProjects выполняет запрос списка проектов и сканирует строки.
func (s *Storage) queryProjects(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Project, 0)
	for rows.Next() {
		var p models.Project
		var link sql.NullString
		if err = rows.Scan(&p.UID, &p.OwnerUID, &p.OwnerName, &p.Title, &p.Description,
			&link, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Link = link.String
		p.Comments = make([]models.Comment, 0)
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// listComments возвращает комментарии проекта в порядке добавления.
func (s *Storage) listComments(ctx context.Context, projectUID string) ([]models.Comment, error) {
	query := `SELECT c.id, c.project_uid, c.author_uid, u.name, c.text, c.created_at
			  FROM comments c
			  JOIN users u ON u.uid = c.author_uid
			  WHERE c.project_uid = $1
			  ORDER BY c.id`
	rows, err := s.DB.QueryContext(ctx, query, projectUID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err = rows.Scan(&c.ID, &c.ProjectUID, &c.AuthorUID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// attachComments дозагружает комментарии для каждого проекта списка.
func (s *Storage) attachComments(ctx context.Context, projects []*models.Project) error {
	for _, p := range projects {
		comments, err := s.listComments(ctx, p.UID)
		if err != nil {
			return err
		}
		p.Comments = comments
	}
	return nil
}
