package professorrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eduposts/internal/domain"
	apperror "eduposts/internal/errors"
	"eduposts/internal/pkg/logger"
)

// ProfessorRepository implementa a interface domain.ProfessorRepository sobre PostgreSQL.
type ProfessorRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProfessorRepository cria uma nova instância do repositório de professores.
func NewProfessorRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ProfessorRepository {
	return &ProfessorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

const insertProfessorSQL = `INSERT INTO professores (id, nome, especialidade, created_at, updated_at)
                            VALUES ($1, $2, $3, $4, $5)`

const selectProfessorSQL = `SELECT id, nome, especialidade, created_at, updated_at FROM professores`

// Save persiste um novo professor.
func (r *ProfessorRepository) Save(ctx context.Context, professor domain.Professor) (domain.Professor, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	professor.ID = uuid.NewString()
	professor.CreatedAt = time.Now()
	professor.UpdatedAt = professor.CreatedAt

	_, err := r.DB.ExecContext(
		ctxTimeout,
		insertProfessorSQL,
		professor.ID,
		professor.Name,
		professor.Specialty,
		professor.CreatedAt,
		professor.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir professor no DB.", err)
		return domain.Professor{}, apperror.NewDBError("falha ao inserir professor", err)
	}

	r.logger.Info("Professor salvo com sucesso no repositório.", map[string]interface{}{"professor_id": professor.ID})
	return professor, nil
}

// FindByID busca um professor pelo ID.
func (r *ProfessorRepository) FindByID(ctx context.Context, id string) (domain.Professor, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout, selectProfessorSQL+` WHERE id = $1`, id)

	var professor domain.Professor
	err := row.Scan(
		&professor.ID,
		&professor.Name,
		&professor.Specialty,
		&professor.CreatedAt,
		&professor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Professor{}, apperror.NewNotFoundError(fmt.Sprintf("Professor com ID '%s' não encontrado", id))
		}
		r.logger.Error("Falha ao buscar professor no DB.", err)
		return domain.Professor{}, apperror.NewDBError("falha ao buscar professor", err)
	}

	return professor, nil
}

// FindAll retorna todos os professores cadastrados.
func (r *ProfessorRepository) FindAll(ctx context.Context) ([]domain.Professor, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, selectProfessorSQL+` ORDER BY nome`)
	if err != nil {
		r.logger.Error("Falha ao listar professores no DB.", err)
		return nil, apperror.NewDBError("falha ao listar professores", err)
	}
	defer rows.Close()

	professores := []domain.Professor{}
	for rows.Next() {
		var professor domain.Professor
		if err := rows.Scan(
			&professor.ID,
			&professor.Name,
			&professor.Specialty,
			&professor.CreatedAt,
			&professor.UpdatedAt,
		); err != nil {
			r.logger.Error("Falha ao mapear professor retornado pelo DB.", err)
			return nil, apperror.NewDBError("falha ao mapear professor", err)
		}
		professores = append(professores, professor)
	}

	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar professores", err)
	}

	return professores, nil
}
