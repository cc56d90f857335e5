package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	mdwerror "github.com/msto63/mdw-chronos/foundation/core/error"
	"github.com/msto63/mdw-chronos/pkg/core/logging"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/mdw.chronos.v1.ChronosService/Parse"}

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"invalid argument", mdwerror.New("bad").WithCode(mdwerror.CodeInvalidArgument), codes.InvalidArgument},
		{"malformed input", mdwerror.New("bad").WithCode(mdwerror.CodeMalformedInput), codes.InvalidArgument},
		{"invalid input", mdwerror.New("empty").WithCode(mdwerror.CodeInvalidInput), codes.InvalidArgument},
		{"wrapped", fmt.Errorf("outer: %w", mdwerror.New("bad").WithCode(mdwerror.CodeMalformedInput)), codes.InvalidArgument},
		{"unavailable", mdwerror.New("down").WithCode(mdwerror.CodeServiceUnavailable), codes.Unavailable},
		{"internal", mdwerror.New("oops").WithCode(mdwerror.CodeInternal), codes.Internal},
		{"plain error", errors.New("plain"), codes.Internal},
		{"status passthrough", status.Error(codes.NotFound, "x"), codes.NotFound},
		{"canceled", context.Canceled, codes.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(ToStatus(tt.err)); got != tt.want {
				t.Errorf("ToStatus() code = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor(logging.New("test"))

	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Errorf("panic should map to Internal, got %v", err)
	}
}

func TestRequestIDInterceptor(t *testing.T) {
	interceptor := RequestIDInterceptor()

	t.Run("generated", func(t *testing.T) {
		var seen string
		_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = GetRequestID(ctx)
			return nil, nil
		})
		if err != nil {
			t.Fatalf("interceptor error = %v", err)
		}
		if len(seen) != 36 {
			t.Errorf("generated request ID %q is not a UUID", seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "abc-123"))
		var seen string
		_, _ = interceptor(ctx, nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
			seen = GetRequestID(ctx)
			return nil, nil
		})
		if seen != "abc-123" {
			t.Errorf("request ID = %q, want abc-123", seen)
		}
	})
}

func TestErrorInterceptor(t *testing.T) {
	interceptor := ErrorInterceptor()

	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, mdwerror.New("unknown part of day").WithCode(mdwerror.CodeInvalidArgument)
	})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument status", err)
	}
	if st.Message() != "unknown part of day" {
		t.Errorf("message = %q", st.Message())
	}
}

func TestDefaultConfigs(t *testing.T) {
	cfg := DefaultServerConfig()
	if cfg.Port != 9160 || cfg.EnableReflection {
		t.Errorf("DefaultServerConfig() = %+v", cfg)
	}
	s := NewServer(cfg)
	if s.GRPCServer() == nil {
		t.Fatal("GRPCServer() returned nil")
	}
	if s.Address() != "0.0.0.0:9160" {
		t.Errorf("Address() = %q", s.Address())
	}

	conn, err := DialSimple("passthrough:///localhost:9160")
	if err != nil {
		t.Fatalf("DialSimple() error = %v", err)
	}
	conn.Close()
}
