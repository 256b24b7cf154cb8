package transform

import "github.com/vk/bpmncore/internal/model"

// compileMappings compiles every input and output mapping's source path
// into a CompiledQuery, using a fresh JSONPathCompiler per service task per
// spec.md §4.4 step 7. Only the whole-array identity case — a single
// mapping that is itself the root mapping ($ -> $) — is elided entirely;
// a root mapping sitting among other entries in a larger array is compiled
// like any other entry, per spec.md §4.4 step 7's "otherwise" branch.
func compileMappings(process *model.Process, newCompiler JSONPathCompilerFactory) {
	for _, task := range process.ServiceTasks {
		io := task.Extensions.InputOutputMapping
		compiler := newCompiler()
		io.CompiledInputs = compileMappingList(io.Inputs, compiler)
		io.CompiledOutputs = compileMappingList(io.Outputs, compiler)
	}
}

func compileMappingList(mappings []model.Mapping, compiler JSONPathCompiler) []model.CompiledMapping {
	if len(mappings) == 0 {
		return nil
	}
	if len(mappings) == 1 && model.IsRootMapping(mappings[0]) {
		return nil
	}
	compiled := make([]model.CompiledMapping, len(mappings))
	for i, m := range mappings {
		compiled[i] = model.CompiledMapping{
			SourceText: m.SourcePath,
			Target:     m.TargetPath,
			Source:     compiler.Compile(m.SourcePath),
		}
	}
	return compiled
}
