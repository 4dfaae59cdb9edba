package dockerfile

import (
	"strings"

	"github.com/samber/lo"
)

// recognizedTools are the package managers and tools whose sub-commands are
// pulled out of shell form RUN commands.
var recognizedTools = []string{"apt-get", "yum", "pip", "git"}

// analyzeRun turns the argument string of a RUN instruction into a record.
// Arguments starting with '[' are the exec form. Anything else is a shell
// command whose '&&'-separated segments are checked for recognized tools.
func analyzeRun(args string) (RunRecord, error) {
	if strings.HasPrefix(args, "[") && strings.HasSuffix(args, "]") {
		return analyzeExecForm(args)
	}
	return analyzeShellForm(args), nil
}

// analyzeExecForm parses the array as JSON, and falls back to splitting on
// commas for arrays that are not valid JSON (e.g. single quoted elements).
func analyzeExecForm(args string) (RunRecord, error) {
	elems, ok := parseJSONArray(args)
	if !ok {
		elems = splitExecArray(args)
	}
	if len(elems) == 0 || elems[0] == "" {
		return RunRecord{}, errEmptyExecForm
	}
	return RunRecord{
		Form:       ExecForm,
		Executable: elems[0],
		Parameters: append([]string{}, elems[1:]...),
	}, nil
}

func splitExecArray(args string) []string {
	trimmed := strings.TrimSpace(args)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	if strings.TrimSpace(trimmed) == "" {
		return nil
	}
	return lo.Map(strings.Split(trimmed, ","), func(elem string, _ int) string {
		return strings.Trim(strings.TrimSpace(elem), `"'`)
	})
}

func analyzeShellForm(args string) RunRecord {
	special := make(map[string][]string)
	for _, segment := range strings.Split(args, "&&") {
		fields := strings.Fields(segment)
		if len(fields) == 0 || !lo.Contains(recognizedTools, fields[0]) {
			continue
		}
		special[fields[0]] = append(special[fields[0]], strings.Join(fields[1:], " "))
	}
	return RunRecord{
		Form:    ShellForm,
		Raw:     args,
		Special: special,
	}
}
