package trivia

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

// QuestionRepository is the question side of the relational store.
type QuestionRepository interface {
	List(ctx context.Context) ([]db.Question, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]db.Question, error)
	Get(ctx context.Context, id int64) (db.Question, error)
	Insert(ctx context.Context, params db.InsertQuestionParams) (db.Question, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository is the read-only category side of the relational store.
type CategoryRepository interface {
	List(ctx context.Context) ([]db.Category, error)
	Get(ctx context.Context, id int64) (db.Category, error)
}

// CategoryCache stores the full category list. Get returns nil, nil on a miss.
type CategoryCache interface {
	Get(ctx context.Context) ([]Category, error)
	Set(ctx context.Context, categories []Category) error
}

// CreateQuestionRequest is a validated question insert.
type CreateQuestionRequest struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   int64  `validate:"required,gt=0"`
	Difficulty int    `validate:"required,gt=0,lte=2147483647"`
}

// QuizRequest is the caller-held quiz state sent with every draw.
type QuizRequest struct {
	Category CategorySelector
	Previous IDSet
}

type ServiceOptions struct {
	Strategy     Strategy
	StoreTimeout time.Duration
	IntN         IntN
}

// Service runs the trivia operations over the store.
type Service struct {
	questions  QuestionRepository
	categories CategoryRepository
	cache      CategoryCache
	strategy   Strategy
	timeout    time.Duration
	intn       IntN
	validate   *validator.Validate
	logger     zerolog.Logger
}

// NewService wires the service. cache may be nil.
func NewService(questions QuestionRepository, categories CategoryRepository, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyUnseen
	}
	intn := opts.IntN
	if intn == nil {
		intn = DefaultIntN
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		strategy:   strategy,
		timeout:    opts.StoreTimeout,
		intn:       intn,
		validate:   validator.New(),
		logger:     logger.With().Str("component", "trivia").Logger(),
	}
}

// Categories lists every category as an id to label map.
func (s *Service) Categories(ctx context.Context) (CategoriesPayload, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	cats, err := s.loadCategories(ctx)
	if err != nil {
		return CategoriesPayload{}, s.fail(KindServerError, "list categories", err)
	}
	return newCategoriesPayload(cats), nil
}

// Questions returns one page of all questions ordered by id.
func (s *Service) Questions(ctx context.Context, page int) (QuestionPage, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	rows, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, s.fail(KindServerError, "list questions", err)
	}
	cats, err := s.loadCategories(ctx)
	if err != nil {
		return QuestionPage{}, s.fail(KindServerError, "list categories", err)
	}
	return newQuestionPage(questionsFromRows(rows), page, QuestionsPerPage, cats), nil
}

// Question fetches a single question.
func (s *Service) Question(ctx context.Context, id int64) (QuestionPayload, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	row, err := s.questions.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return QuestionPayload{}, newError(KindNotFound, "get question", err)
	}
	if err != nil {
		return QuestionPayload{}, s.fail(KindServerError, "get question", err)
	}
	return QuestionPayload{Success: true, Question: questionFromRow(row)}, nil
}

// CategoryQuestions returns one page of the questions of a category.
func (s *Service) CategoryQuestions(ctx context.Context, categoryID int64, page int) (CategoryQuestionPage, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	current, err := s.categories.Get(ctx, categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return CategoryQuestionPage{}, newError(KindNotFound, "get category", err)
	}
	if err != nil {
		return CategoryQuestionPage{}, s.fail(KindServerError, "get category", err)
	}
	rows, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestionPage{}, s.fail(KindServerError, "list category questions", err)
	}
	cats, err := s.loadCategories(ctx)
	if err != nil {
		return CategoryQuestionPage{}, s.fail(KindServerError, "list categories", err)
	}
	return CategoryQuestionPage{
		QuestionPage:    newQuestionPage(questionsFromRows(rows), page, QuestionsPerPage, cats),
		CurrentCategory: current.Type,
	}, nil
}

// CreateQuestion validates and stores a new question.
func (s *Service) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (Question, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Debug().Err(err).Msg("rejected question payload")
		return Question{}, newError(KindBadRequest, "create question", err)
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	row, err := s.questions.Insert(ctx, db.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: int32(req.Difficulty),
	})
	if err != nil {
		return Question{}, s.fail(KindUnprocessable, "create question", err)
	}
	return questionFromRow(row), nil
}

// DeleteQuestion removes a question. Unknown ids are unprocessable.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	err := s.questions.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Debug().Int64("question_id", id).Msg("delete of unknown question")
		return newError(KindUnprocessable, "delete question", err)
	}
	if err != nil {
		return s.fail(KindUnprocessable, "delete question", err)
	}
	return nil
}

// Search returns every question whose text contains term.
func (s *Service) Search(ctx context.Context, term string) (SearchResult, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	rows, err := s.questions.List(ctx)
	if err != nil {
		return SearchResult{}, s.fail(KindUnprocessable, "search questions", err)
	}
	return newSearchResult(Filter(questionsFromRows(rows), term)), nil
}

// NextQuizQuestion draws the next unseen question of the selected scope.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (QuizResult, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	var (
		rows []db.Question
		err  error
	)
	if id, ok := req.Category.Specific(); ok {
		rows, err = s.questions.ListByCategory(ctx, id)
	} else {
		rows, err = s.questions.List(ctx)
	}
	if err != nil {
		return QuizResult{}, s.fail(KindUnprocessable, "load quiz pool", err)
	}

	q, ok := NextQuestion(questionsFromRows(rows), req.Previous, s.strategy, s.intn)
	outcome := "served"
	if !ok {
		outcome = "exhausted"
	}
	metrics.QuizSelections.WithLabelValues(string(s.strategy), req.Category.String(), outcome).Inc()
	return newQuizResult(q, ok), nil
}

// Strategy reports the configured quiz sampling strategy.
func (s *Service) Strategy() Strategy {
	return s.strategy
}

// RefreshCategories reloads the category list from the store into the cache.
func (s *Service) RefreshCategories(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	rows, err := s.categories.List(ctx)
	if err != nil {
		return s.fail(KindServerError, "refresh categories", err)
	}
	return s.cache.Set(ctx, categoriesFromRows(rows))
}

func (s *Service) loadCategories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.CategoryCache.WithLabelValues("error").Inc()
			s.logger.Warn().Err(err).Msg("category cache read failed")
		case cached != nil:
			metrics.CategoryCache.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.CategoryCache.WithLabelValues("miss").Inc()
		}
	}

	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	cats := categoriesFromRows(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cats); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return cats, nil
}

func (s *Service) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) fail(kind Kind, op string, err error) error {
	metrics.StoreErrors.WithLabelValues(op).Inc()
	s.logger.Warn().Err(err).Str("op", op).Msg("store operation failed")
	return newError(kind, op, err)
}
