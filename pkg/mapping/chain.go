package mapping

import (
	"github.com/goliatone/go-formbind/pkg/compose"
	"github.com/goliatone/go-formbind/pkg/field"
	"github.com/goliatone/go-formbind/pkg/props"
)

// ChainInput runs every mapper against the same input and merges the
// results in order, later mappers winning on collisions. Nil mappers are
// skipped; with no mappers the result is an empty Props.
func ChainInput(mappers ...compose.InputMapper) compose.InputMapper {
	return func(input field.Input, own props.Props) props.Props {
		results := make([]props.Props, 0, len(mappers))
		for _, mapper := range mappers {
			if mapper == nil {
				continue
			}
			results = append(results, mapper(input, own))
		}
		return props.Merge(results...)
	}
}

// ChainMeta is the meta counterpart of ChainInput.
func ChainMeta(mappers ...compose.MetaMapper) compose.MetaMapper {
	return func(meta field.Meta, own props.Props) props.Props {
		results := make([]props.Props, 0, len(mappers))
		for _, mapper := range mappers {
			if mapper == nil {
				continue
			}
			results = append(results, mapper(meta, own))
		}
		return props.Merge(results...)
	}
}

// Rename wraps an input mapper and moves result keys according to names
// (old name to new name). Keys not listed are kept as they are; a renamed
// key overwrites an unrenamed key of the same name.
func Rename(mapper compose.InputMapper, names map[string]string) compose.InputMapper {
	if mapper == nil {
		return nil
	}
	return func(input field.Input, own props.Props) props.Props {
		src := mapper(input, own)
		out := make(props.Props, len(src))
		for key, value := range src {
			if renamed := names[key]; renamed == "" {
				out[key] = value
			}
		}
		for key, value := range src {
			if renamed := names[key]; renamed != "" {
				out[renamed] = value
			}
		}
		return out
	}
}
