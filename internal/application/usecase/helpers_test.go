package usecase_test

import (
	"context"

	"github.com/grafana/grafana-sub060/internal/domain/entity"
	"github.com/grafana/grafana-sub060/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sampleDoc() *entity.Dashboard {
	return &entity.Dashboard{
		UID:           "abc",
		Title:         "Sample",
		SchemaVersion: entity.SchemaVersion,
		Version:       2,
		Panels: []*entity.Panel{
			{ID: 1, Type: "text", Title: "Notes", GridPos: entity.GridPos{W: 12, H: 4}},
		},
		Templating:  entity.Templating{List: []*entity.Variable{}},
		Annotations: entity.AnnotationList{List: []*entity.Annotation{}},
	}
}
