package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/dptools/elastic/internal/cli"
	"github.com/dptools/elastic/internal/fileio"
)

const fccAl = `Al4
1.0
4.05 0.0 0.0
0.0 4.05 0.0
0.0 0.0 4.05
Al
4
Direct
0.0 0.0 0.0
0.0 0.5 0.5
0.5 0.0 0.5
0.5 0.5 0.0
`

func run(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	return cmd.Execute()
}

func writeZeroResult(path string) {
	data, err := json.Marshal(map[string]interface{}{
		"stress": [][][]float64{{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	})
	Expect(err).To(BeNil())
	Expect(os.WriteFile(path, data, 0o644)).To(Succeed())
}

var _ = Describe("elastic commands", Ordered, func() {
	var (
		root  string
		equi  string
		work  string
		param string
	)

	BeforeAll(func() {
		root = GinkgoT().TempDir()
		equi = filepath.Join(root, "relax_task")
		work = filepath.Join(root, "elastic_00")
		param = filepath.Join(root, "param.yaml")

		Expect(os.MkdirAll(equi, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(equi, "CONTCAR"), []byte(fccAl), 0o644)).To(Succeed())
		writeZeroResult(filepath.Join(equi, "result.json"))
		Expect(os.WriteFile(param, []byte("type: elastic\nnorm_deform: 0.01\n"), 0o644)).To(Succeed())
	})

	It("rejects missing required flags", func() {
		Expect(run(cli.NewCmdGenerate(), "--param", param, "--work-dir", work)).ToNot(Succeed())
		Expect(run(cli.NewCmdAggregate(), "--work-dir", work)).ToNot(Succeed())
		Expect(run(cli.NewCmdHistory(), "--output", "xml")).ToNot(Succeed())
	})

	It("generates the tasks", func() {
		Expect(run(cli.NewCmdGenerate(), "-p", param, "-w", work, "-e", equi)).To(Succeed())
		tasks, err := fileio.TaskDirs(work)
		Expect(err).To(BeNil())
		Expect(tasks).To(HaveLen(24))
	})

	It("shares the k-point mesh", func() {
		Expect(os.WriteFile(filepath.Join(work, "task.000000", "INCAR"), []byte("KSPACING = 0.3\n"), 0o644)).To(Succeed())
		Expect(run(cli.NewCmdPostProcess(), "-p", param, "-w", work)).To(Succeed())
		Expect(filepath.Join(work, "KPOINTS")).To(BeARegularFile())
	})

	It("aggregates and archives the report", func() {
		tasks, err := fileio.TaskDirs(work)
		Expect(err).To(BeNil())
		for _, t := range tasks {
			writeZeroResult(filepath.Join(t, "result_task.json"))
		}

		Expect(run(cli.NewCmdAggregate(), "-p", param, "-w", work, "--archive")).To(Succeed())
		Expect(filepath.Join(work, "result.json")).To(BeARegularFile())
		Expect(filepath.Join(work, "result.out")).To(BeARegularFile())
		Expect(filepath.Join(dbDir, "elastic.db")).To(BeARegularFile())
		Expect(filepath.Join(dbDir, "elastic.prom")).To(BeARegularFile())

		Expect(run(cli.NewCmdHistory(), "-o", "json")).To(Succeed())
	})

	It("exports the report", func() {
		out := filepath.Join(root, "Al.xlsx")
		Expect(run(cli.NewCmdExport(), filepath.Join(work, "result.json"), "--output", out)).To(Succeed())
		Expect(out).To(BeARegularFile())
	})
})
