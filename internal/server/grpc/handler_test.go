package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/tierforum/internal/common"
	pb "github.com/dmitrijs2005/tierforum/internal/proto"
	"github.com/dmitrijs2005/tierforum/internal/server/gate"
	"github.com/dmitrijs2005/tierforum/internal/server/models"
	"github.com/dmitrijs2005/tierforum/internal/server/services"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type harness struct {
	client    pb.ForumClient
	users     *fakeUsers
	questions *fakeQuestions
	answers   *fakeAnswers
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	srv, u, q, a := newTestServer("bufconn")
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return &harness{client: pb.NewForumClient(conn), users: u, questions: q, answers: a}
}

func withAuth(header string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, header)
}

func TestForum_Signup(t *testing.T) {
	h := newHarness(t)

	out, err := h.client.Signup(context.Background(),
		&pb.SignupRequest{Email: "a@example.com", Password: "pw", DisplayName: "A", Tier: 99})
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	want := &pb.AuthResponse{User: &pb.User{Id: "u-1", Email: "a@example.com", DisplayName: "A", Tier: 3}, Token: "issued-token"}
	if diff := cmp.Diff(want, out, protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
	if h.users.signupIn.Tier != 99 {
		t.Fatalf("requested tier should reach the service unchanged, got %d", h.users.signupIn.Tier)
	}
}

func TestForum_SignupConflict(t *testing.T) {
	h := newHarness(t)
	h.users.signupErr = &services.ConflictError{Message: "User with this email already exists"}

	_, err := h.client.Signup(context.Background(), &pb.SignupRequest{Email: "a@example.com"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", err)
	}
}

func TestForum_SigninBadCredentials(t *testing.T) {
	h := newHarness(t)
	h.users.signinErr = common.ErrorInvalidCredentials

	_, err := h.client.Signin(context.Background(), &pb.SigninRequest{Email: "a@example.com", Password: "x"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestForum_MeUsesAuthorizationMetadata(t *testing.T) {
	h := newHarness(t)

	out, err := h.client.Me(withAuth(goodHeader), &pb.MeRequest{})
	if err != nil {
		t.Fatalf("Me error: %v", err)
	}
	if out.GetUser().GetId() != testClaim.UserID || out.GetUser().GetTier() != int32(testClaim.Tier) {
		t.Fatalf("unexpected user: %v", out.GetUser())
	}

	_, err = h.client.Me(context.Background(), &pb.MeRequest{})
	st := status.Convert(err)
	if st.Code() != codes.Unauthenticated || st.Message() != gate.UnauthenticatedMessage {
		t.Fatalf("want Unauthenticated %q, got %v", gate.UnauthenticatedMessage, err)
	}
}

func TestForum_MutationsCarryHeader(t *testing.T) {
	h := newHarness(t)
	ctx := withAuth(goodHeader)

	q, err := h.client.CreateQuestion(ctx, &pb.CreateQuestionRequest{Title: "Why?", Body: "..."})
	if err != nil {
		t.Fatalf("CreateQuestion error: %v", err)
	}
	if q.GetQuestion().GetAuthor().GetDisplayName() != "Alice" {
		t.Fatalf("unexpected author: %v", q.GetQuestion().GetAuthor())
	}
	if !q.GetQuestion().GetCreatedAt().AsTime().Equal(testTime) {
		t.Fatalf("unexpected created_at: %v", q.GetQuestion().GetCreatedAt())
	}

	if _, err := h.client.UpdateQuestion(ctx, &pb.UpdateQuestionRequest{Id: "q-1", Body: "more"}); err != nil {
		t.Fatalf("UpdateQuestion error: %v", err)
	}

	a, err := h.client.CreateAnswer(ctx, &pb.CreateAnswerRequest{QuestionId: "q-1", Body: "Because"})
	if err != nil {
		t.Fatalf("CreateAnswer error: %v", err)
	}
	if a.GetAnswer().GetQuestionId() != "q-1" {
		t.Fatalf("unexpected answer: %v", a.GetAnswer())
	}

	if _, err := h.client.DeleteAnswer(ctx, &pb.DeleteAnswerRequest{Id: "a-1"}); err != nil {
		t.Fatalf("DeleteAnswer error: %v", err)
	}
	if _, err := h.client.DeleteQuestion(ctx, &pb.DeleteQuestionRequest{Id: "q-1"}); err != nil {
		t.Fatalf("DeleteQuestion error: %v", err)
	}

	for _, got := range append(h.questions.headers, h.answers.headers...) {
		if got != goodHeader {
			t.Fatalf("service saw header %q, want %q", got, goodHeader)
		}
	}
	if len(h.questions.headers) != 3 || len(h.answers.headers) != 2 {
		t.Fatalf("unexpected call counts: questions=%d answers=%d", len(h.questions.headers), len(h.answers.headers))
	}
}

func TestForum_DenialsMapToStatus(t *testing.T) {
	h := newHarness(t)
	h.answers.err = &gate.DeniedError{Kind: gate.DenialForbidden, Message: "You must be Tier 2 or higher to answer questions"}
	h.questions.err = &gate.DeniedError{Kind: gate.DenialNotFound, Message: "question not found"}

	_, err := h.client.CreateAnswer(withAuth(goodHeader), &pb.CreateAnswerRequest{QuestionId: "q-1", Body: "x"})
	if st := status.Convert(err); st.Code() != codes.PermissionDenied || st.Message() != "You must be Tier 2 or higher to answer questions" {
		t.Fatalf("unexpected status: %v", err)
	}

	_, err = h.client.GetQuestion(context.Background(), &pb.GetQuestionRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestForum_GetQuestionIncludesAnswers(t *testing.T) {
	h := newHarness(t)

	q, err := h.client.GetQuestion(context.Background(), &pb.GetQuestionRequest{Id: "q-9"})
	if err != nil {
		t.Fatalf("GetQuestion error: %v", err)
	}
	answers := q.GetQuestion().GetAnswers()
	if len(answers) != 1 || answers[0].GetQuestionId() != "q-9" {
		t.Fatalf("unexpected answers: %v", answers)
	}
	if answers[0].GetAuthor() != nil {
		t.Fatalf("orphaned answer should carry no author, got %v", answers[0].GetAuthor())
	}
	if answers[0].GetCreatedAt() != nil {
		t.Fatalf("zero time should stay unset, got %v", answers[0].GetCreatedAt())
	}
}

func TestForum_ListQuestions(t *testing.T) {
	h := newHarness(t)
	h.questions.items = []models.Question{
		{ID: "q-2", Title: "second", AnswerCount: 3, CreatedAt: testTime},
		{ID: "q-1", Title: "first"},
	}

	out, err := h.client.ListQuestions(context.Background(), &pb.ListQuestionsRequest{})
	if err != nil {
		t.Fatalf("ListQuestions error: %v", err)
	}

	want := &pb.ListQuestionsResponse{Questions: []*pb.Question{
		{Id: "q-2", Title: "second", AnswerCount: 3, CreatedAt: timestamppb.New(testTime)},
		{Id: "q-1", Title: "first"},
	}}
	if diff := cmp.Diff(want, out, protocmp.Transform()); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
}
