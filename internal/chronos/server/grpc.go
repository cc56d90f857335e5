package server

import (
	"context"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	coreGrpc "github.com/msto63/mdw-chronos/pkg/core/grpc"
	"github.com/msto63/mdw-chronos/pkg/timex"
)

// Parse implements ChronosServer.Parse
func (s *Server) Parse(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	result, err := s.service.Parse(ctx, stringField(req, "timex"))
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}

	return newStruct(map[string]any{
		"timex":     result.Timex,
		"canonical": result.Canonical,
		"types":     toList(result.Types),
	})
}

// Format implements ChronosServer.Format. Request fields carry TIMEX group
// names such as year, month, dayOfMonth or hourAmount.
func (s *Server) Format(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := make(map[string]string, len(req.GetFields()))
	for key, value := range req.GetFields() {
		fields[key] = scalarString(value)
	}

	text, err := s.service.FormatFields(ctx, fields)
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}

	return newStruct(map[string]any{"timex": text})
}

// Expand implements ChronosServer.Expand
func (s *Server) Expand(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	result, err := s.service.Expand(ctx, stringField(req, "timex"))
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}

	return newStruct(map[string]any{
		"timex":    result.Timex,
		"kind":     result.Kind,
		"start":    result.Start,
		"end":      result.End,
		"duration": result.Duration,
	})
}

// Resolve implements ChronosServer.Resolve
func (s *Server) Resolve(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ref, err := s.service.ParseReference(stringField(req, "reference_date"))
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}

	resolution, err := s.service.Resolve(ctx, listField(req, "timex"), ref)
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}

	values := make([]any, 0, len(resolution.Values))
	for _, e := range resolution.Values {
		values = append(values, entryMap(e))
	}
	return newStruct(map[string]any{"values": values})
}

// Evaluate implements ChronosServer.Evaluate
func (s *Server) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	results, err := s.service.Evaluate(ctx, listField(req, "candidates"), listField(req, "constraints"))
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}

	return newStruct(map[string]any{"timex": toList(results)})
}

func entryMap(e timex.Entry) map[string]any {
	m := map[string]any{"timex": e.Timex, "type": e.Type}
	if e.Value != "" {
		m["value"] = e.Value
	}
	if e.Start != "" {
		m["start"] = e.Start
	}
	if e.End != "" {
		m["end"] = e.End
	}
	return m
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, coreGrpc.ToStatus(err)
	}
	return st, nil
}

func stringField(req *structpb.Struct, key string) string {
	return scalarString(req.GetFields()[key])
}

// listField accepts a list of strings or a single string
func listField(req *structpb.Struct, key string) []string {
	v := req.GetFields()[key]
	if list := v.GetListValue(); list != nil {
		out := make([]string, 0, len(list.GetValues()))
		for _, item := range list.GetValues() {
			if s := scalarString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := scalarString(v); s != "" {
		return []string{s}
	}
	return nil
}

func scalarString(v *structpb.Value) string {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(k.BoolValue)
	}
	return ""
}

func toList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
