package variables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/variables"
)

func TestExtractVariableNames(t *testing.T) {
	got := variables.ExtractVariableNames(
		"sum(rate(x{host=~\"$host\"}[$__interval]))",
		"${server:csv} [[legacy]] ${host} ${obj.field}",
	)
	assert.Equal(t, []string{"host", "__interval", "server", "legacy", "obj"}, got)
}

func TestSubscribeDependencies_FiresOnValueChangeAndLoadCompletion(t *testing.T) {
	host := variables.NewQueryVariable(variables.MultiValueState{
		Meta:  variables.Meta{Name: "host"},
		Value: entity.StringValue("a"),
	})
	other := variables.NewCustomVariable(variables.MultiValueState{Meta: variables.Meta{Name: "other"}})
	leaf := newScope(nil, nil)
	newScope(variables.NewSet(host, other), leaf)

	var fired []string
	unsub := variables.SubscribeDependencies(leaf, []string{"host"}, func(name string) {
		fired = append(fired, name)
	})

	host.UpdateState(func(s *variables.MultiValueState) { s.Loading = true })
	assert.Empty(t, fired)

	host.UpdateState(func(s *variables.MultiValueState) { s.Loading = false })
	assert.Equal(t, []string{"host"}, fired)

	host.SetValue(entity.StringValue("b"), entity.StringValue("b"))
	assert.Len(t, fired, 2)

	other.SetValue(entity.StringValue("x"), entity.StringValue("x"))
	host.UpdateState(func(s *variables.MultiValueState) { s.Description = "unrelated" })
	assert.Len(t, fired, 2)

	unsub()
	host.SetValue(entity.StringValue("c"), entity.StringValue("c"))
	assert.Len(t, fired, 2)
}
