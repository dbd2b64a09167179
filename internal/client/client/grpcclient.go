package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/client/models"
	"github.com/dmitrijs2005/tierforum/internal/common"
	pb "github.com/dmitrijs2005/tierforum/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ForumClient

	mu    sync.RWMutex
	token string
}

func NewForumClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.authorizationInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewForumClient(conn)
	return nil
}

func withAuthorization(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	return metadata.NewOutgoingContext(ctx, md)
}

// authorizationInterceptor attaches the current token, if any.
func (s *GRPCClient) authorizationInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.currentToken(); token != "" {
		ctx = withAuthorization(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *GRPCClient) Signup(ctx context.Context, email, password, displayName string, tier int) (*models.User, error) {
	resp, err := s.client.Signup(ctx, &pb.SignupRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		Tier:        int32(tier),
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.GetToken())
	return userFromPB(resp.GetUser()), nil
}

func (s *GRPCClient) Signin(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.client.Signin(ctx, &pb.SigninRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setToken(resp.GetToken())
	return userFromPB(resp.GetUser()), nil
}

// SignOut forgets the token. Tokens are not revoked server side.
func (s *GRPCClient) SignOut() {
	s.setToken("")
}

func (s *GRPCClient) SignedIn() bool {
	return s.currentToken() != ""
}

func (s *GRPCClient) Me(ctx context.Context) (*models.User, error) {
	resp, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return userFromPB(resp.GetUser()), nil
}

func (s *GRPCClient) ListQuestions(ctx context.Context) ([]models.Question, error) {
	resp, err := s.client.ListQuestions(ctx, &pb.ListQuestionsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	items := make([]models.Question, 0, len(resp.GetQuestions()))
	for _, q := range resp.GetQuestions() {
		items = append(items, *questionFromPB(q))
	}
	return items, nil
}

func (s *GRPCClient) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	resp, err := s.client.GetQuestion(ctx, &pb.GetQuestionRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return questionFromPB(resp.GetQuestion()), nil
}

func (s *GRPCClient) CreateQuestion(ctx context.Context, title, body string) (*models.Question, error) {
	resp, err := s.client.CreateQuestion(ctx, &pb.CreateQuestionRequest{Title: title, Body: body})
	if err != nil {
		return nil, s.mapError(err)
	}
	return questionFromPB(resp.GetQuestion()), nil
}

func (s *GRPCClient) UpdateQuestion(ctx context.Context, id, title, body string) (*models.Question, error) {
	resp, err := s.client.UpdateQuestion(ctx, &pb.UpdateQuestionRequest{Id: id, Title: title, Body: body})
	if err != nil {
		return nil, s.mapError(err)
	}
	return questionFromPB(resp.GetQuestion()), nil
}

func (s *GRPCClient) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := s.client.DeleteQuestion(ctx, &pb.DeleteQuestionRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateAnswer(ctx context.Context, questionID, body string) (*models.Answer, error) {
	resp, err := s.client.CreateAnswer(ctx, &pb.CreateAnswerRequest{QuestionId: questionID, Body: body})
	if err != nil {
		return nil, s.mapError(err)
	}
	return answerFromPB(resp.GetAnswer()), nil
}

func (s *GRPCClient) UpdateAnswer(ctx context.Context, id, body string) (*models.Answer, error) {
	resp, err := s.client.UpdateAnswer(ctx, &pb.UpdateAnswerRequest{Id: id, Body: body})
	if err != nil {
		return nil, s.mapError(err)
	}
	return answerFromPB(resp.GetAnswer()), nil
}

func (s *GRPCClient) DeleteAnswer(ctx context.Context, id string) error {
	if _, err := s.client.DeleteAnswer(ctx, &pb.DeleteAnswerRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromPB(u *pb.User) *models.User {
	return &models.User{
		ID:          u.GetId(),
		Email:       u.GetEmail(),
		DisplayName: u.GetDisplayName(),
		Tier:        int(u.GetTier()),
	}
}

func authorFromPB(a *pb.Author) *models.Author {
	if a == nil {
		return nil
	}
	return &models.Author{ID: a.GetId(), DisplayName: a.GetDisplayName(), Tier: int(a.GetTier())}
}

func questionFromPB(q *pb.Question) *models.Question {
	out := &models.Question{
		ID:          q.GetId(),
		Title:       q.GetTitle(),
		Body:        q.GetBody(),
		Author:      authorFromPB(q.GetAuthor()),
		AnswerCount: int(q.GetAnswerCount()),
		CreatedAt:   timeFromPB(q.GetCreatedAt()),
		UpdatedAt:   timeFromPB(q.GetUpdatedAt()),
	}
	for _, a := range q.GetAnswers() {
		out.Answers = append(out.Answers, *answerFromPB(a))
	}
	return out
}

func answerFromPB(a *pb.Answer) *models.Answer {
	return &models.Answer{
		ID:         a.GetId(),
		QuestionID: a.GetQuestionId(),
		Body:       a.GetBody(),
		Author:     authorFromPB(a.GetAuthor()),
		CreatedAt:  timeFromPB(a.GetCreatedAt()),
		UpdatedAt:  timeFromPB(a.GetUpdatedAt()),
	}
}

func timeFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
