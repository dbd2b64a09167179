package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/tierforum/internal/proto"
	"github.com/dmitrijs2005/tierforum/internal/server/auth"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type userService interface {
	Signup(ctx context.Context, in services.SignupInput) (*services.AuthResult, error)
	Signin(ctx context.Context, email, password string) (*services.AuthResult, error)
	Me(ctx context.Context, rawHeader string) (auth.Claim, error)
}

type questionService interface {
	List(ctx context.Context) ([]models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, rawHeader, title, body string) (*models.Question, error)
	Update(ctx context.Context, rawHeader, id, title, body string) (*models.Question, error)
	Delete(ctx context.Context, rawHeader, id string) error
}

type answerService interface {
	Create(ctx context.Context, rawHeader, questionID, body string) (*models.Answer, error)
	Update(ctx context.Context, rawHeader, id, body string) (*models.Answer, error)
	Delete(ctx context.Context, rawHeader, id string) error
}

func (s *GRPCServer) Signup(ctx context.Context, req *pb.SignupRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Signup(ctx, services.SignupInput{
		Email:       req.GetEmail(),
		Password:    req.GetPassword(),
		DisplayName: req.GetDisplayName(),
		Tier:        int(req.GetTier()),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AuthResponse{User: userToPB(res.User.Claim()), Token: res.Token}, nil
}

func (s *GRPCServer) Signin(ctx context.Context, req *pb.SigninRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Signin(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AuthResponse{User: userToPB(res.User.Claim()), Token: res.Token}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.MeResponse, error) {
	claim, err := s.users.Me(ctx, authorizationFromContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.MeResponse{User: userToPB(claim)}, nil
}

func (s *GRPCServer) ListQuestions(ctx context.Context, _ *pb.ListQuestionsRequest) (*pb.ListQuestionsResponse, error) {
	items, err := s.questions.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListQuestionsResponse{Questions: make([]*pb.Question, 0, len(items))}
	for i := range items {
		resp.Questions = append(resp.Questions, questionToPB(&items[i]))
	}
	return resp, nil
}

func (s *GRPCServer) GetQuestion(ctx context.Context, req *pb.GetQuestionRequest) (*pb.QuestionResponse, error) {
	q, err := s.questions.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.QuestionResponse{Question: questionToPB(q)}, nil
}

func (s *GRPCServer) CreateQuestion(ctx context.Context, req *pb.CreateQuestionRequest) (*pb.QuestionResponse, error) {
	q, err := s.questions.Create(ctx, authorizationFromContext(ctx), req.GetTitle(), req.GetBody())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.QuestionResponse{Question: questionToPB(q)}, nil
}

func (s *GRPCServer) UpdateQuestion(ctx context.Context, req *pb.UpdateQuestionRequest) (*pb.QuestionResponse, error) {
	q, err := s.questions.Update(ctx, authorizationFromContext(ctx), req.GetId(), req.GetTitle(), req.GetBody())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.QuestionResponse{Question: questionToPB(q)}, nil
}

func (s *GRPCServer) DeleteQuestion(ctx context.Context, req *pb.DeleteQuestionRequest) (*pb.DeleteResponse, error) {
	if err := s.questions.Delete(ctx, authorizationFromContext(ctx), req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteResponse{}, nil
}

func (s *GRPCServer) CreateAnswer(ctx context.Context, req *pb.CreateAnswerRequest) (*pb.AnswerResponse, error) {
	a, err := s.answers.Create(ctx, authorizationFromContext(ctx), req.GetQuestionId(), req.GetBody())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AnswerResponse{Answer: answerToPB(a)}, nil
}

func (s *GRPCServer) UpdateAnswer(ctx context.Context, req *pb.UpdateAnswerRequest) (*pb.AnswerResponse, error) {
	a, err := s.answers.Update(ctx, authorizationFromContext(ctx), req.GetId(), req.GetBody())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AnswerResponse{Answer: answerToPB(a)}, nil
}

func (s *GRPCServer) DeleteAnswer(ctx context.Context, req *pb.DeleteAnswerRequest) (*pb.DeleteResponse, error) {
	if err := s.answers.Delete(ctx, authorizationFromContext(ctx), req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteResponse{}, nil
}

func userToPB(c auth.Claim) *pb.User {
	return &pb.User{Id: c.UserID, Email: c.Email, DisplayName: c.DisplayName, Tier: int32(c.Tier)}
}

func authorToPB(a *models.Author) *pb.Author {
	if a == nil {
		return nil
	}
	return &pb.Author{Id: a.ID, DisplayName: a.DisplayName, Tier: int32(a.Tier)}
}

func questionToPB(q *models.Question) *pb.Question {
	out := &pb.Question{
		Id:          q.ID,
		Title:       q.Title,
		Body:        q.Body,
		Author:      authorToPB(q.Author),
		AnswerCount: int32(q.AnswerCount),
		CreatedAt:   timestampToPB(q.CreatedAt),
		UpdatedAt:   timestampToPB(q.UpdatedAt),
	}
	for i := range q.Answers {
		out.Answers = append(out.Answers, answerToPB(&q.Answers[i]))
	}
	return out
}

func answerToPB(a *models.Answer) *pb.Answer {
	return &pb.Answer{
		Id:         a.ID,
		QuestionId: a.QuestionID,
		Body:       a.Body,
		Author:     authorToPB(a.Author),
		CreatedAt:  timestampToPB(a.CreatedAt),
		UpdatedAt:  timestampToPB(a.UpdatedAt),
	}
}

// timestampToPB leaves zero times unset.
func timestampToPB(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}
