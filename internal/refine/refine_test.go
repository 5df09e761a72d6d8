package refine_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dptools/elastic/internal/refine"
)

var _ = Describe("refine", func() {
	var root string

	makeSource := func(n int) string {
		src := filepath.Join(root, "confs", "Al", "elastic_00")
		for i := 0; i < n; i++ {
			task := filepath.Join(src, "task."+pad(i))
			Expect(os.MkdirAll(task, 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(task, "CONTCAR"), []byte(pad(i)), 0o644)).To(Succeed())
		}
		return src
	}

	BeforeEach(func() {
		root = GinkgoT().TempDir()
	})

	Context("SourceDir", func() {
		It("replaces the last occurrence of the suffix", func() {
			dir, err := refine.SourceDir("_00", "_01", "/a_01/elastic_01")
			Expect(err).To(BeNil())
			Expect(dir).To(Equal("/a_01/elastic_00"))
		})

		It("rejects a work dir without the suffix", func() {
			_, err := refine.SourceDir("_00", "_01", "/a/elastic")
			Expect(err).To(MatchError(refine.ErrBadSuffix))
		})
	})

	Context("MakeRefine", func() {
		It("relabels every source task in order", func() {
			makeSource(3)
			work := filepath.Join(root, "confs", "Al", "elastic_01")
			Expect(os.MkdirAll(filepath.Join(work, "task.000001"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(work, "task.000001", "INCAR"), []byte("stale"), 0o644)).To(Succeed())

			tasks, err := refine.NewFileRefiner().MakeRefine("_00", "_01", work)
			Expect(err).To(BeNil())
			Expect(tasks).To(Equal([]string{
				filepath.Join(work, "task.000000"),
				filepath.Join(work, "task.000001"),
				filepath.Join(work, "task.000002"),
			}))

			for i, task := range tasks {
				data, err := os.ReadFile(filepath.Join(task, "POSCAR"))
				Expect(err).To(BeNil())
				Expect(string(data)).To(Equal(pad(i)))
			}
			_, err = os.Stat(filepath.Join(work, "task.000001", "INCAR"))
			Expect(os.IsNotExist(err)).To(BeTrue())

			link, err := os.Readlink(filepath.Join(work, "task.000002", "POSCAR"))
			Expect(err).To(BeNil())
			Expect(filepath.IsAbs(link)).To(BeFalse())
		})

		It("fails when the source run is missing", func() {
			work := filepath.Join(root, "elastic_01")
			_, err := refine.NewFileRefiner().MakeRefine("_00", "_01", work)
			Expect(err).To(MatchError(refine.ErrNoSourceDir))
		})

		It("fails when a source task has no CONTCAR", func() {
			src := makeSource(2)
			Expect(os.Remove(filepath.Join(src, "task.000001", "CONTCAR"))).To(Succeed())

			_, err := refine.NewFileRefiner().MakeRefine("_00", "_01", filepath.Join(root, "confs", "Al", "elastic_01"))
			Expect(err).To(MatchError(refine.ErrNoSourceTask))
		})

		It("fails when source task numbering has a gap", func() {
			src := makeSource(1)
			Expect(os.MkdirAll(filepath.Join(src, "task.000005"), 0o755)).To(Succeed())

			_, err := refine.NewFileRefiner().MakeRefine("_00", "_01", filepath.Join(root, "confs", "Al", "elastic_01"))
			Expect(err).To(MatchError(refine.ErrNoSourceTask))
		})
	})
})

func pad(i int) string {
	return []string{"000000", "000001", "000002", "000003"}[i]
}
