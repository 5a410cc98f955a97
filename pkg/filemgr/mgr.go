package filemgr

import (
	"fmt"
	"os"
	"path"

	"github.com/lance6716/aoc-circuits/pkg/util"
	"github.com/pingcap/errors"
)

const (
	inputExt      = ".txt"
	answersSubDir = "answers"
)

// Manager owns a folder and organizes the puzzle inputs and answers. The
// hierarchy is
//
//	<workDir>/NN.txt          puzzle input of day NN
//	<workDir>/answers/NN.txt  answers of day NN, one part per line
type Manager struct {
	workDir string
}

// NewManager creates a new Manager instance on the given work directory.
func NewManager(workDir string) *Manager {
	return &Manager{workDir: workDir}
}

func dayFilename(day int) string {
	return fmt.Sprintf("%02d%s", day, inputExt)
}

// InputPath returns the path of the input file of the day.
func (m *Manager) InputPath(day int) string {
	return path.Join(m.workDir, dayFilename(day))
}

// ReadInput reads the input of the day.
func (m *Manager) ReadInput(day int) (string, error) {
	content, err := os.ReadFile(m.InputPath(day))
	if err != nil {
		return "", errors.Annotatef(err, "unable to find input for day %d", day)
	}
	return string(content), nil
}

// AnswersPath returns the path of the answers file of the day.
func (m *Manager) AnswersPath(day int) string {
	return path.Join(m.workDir, answersSubDir, dayFilename(day))
}

// WriteAnswers writes the answers of the day, replacing earlier ones.
func (m *Manager) WriteAnswers(day int, answers ...string) error {
	dir := path.Join(m.workDir, answersSubDir)
	if err := os.MkdirAll(dir, 0776); err != nil {
		return errors.Trace(err)
	}
	var content []byte
	for _, a := range answers {
		content = append(content, a...)
		content = append(content, '\n')
	}
	return util.AtomicWrite(m.AnswersPath(day), content)
}
