package fileio_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dptools/elastic/internal/fileio"
)

var _ = Describe("fileio", func() {
	var (
		root   string
		writer *fileio.Writer
		reader *fileio.Reader
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		writer = fileio.NewWriter(root)
		reader = fileio.NewReader(root)
	})

	Context("Writer", func() {
		It("writes JSON indented by four spaces", func() {
			Expect(writer.WriteJSON("out.json", map[string]int{"a": 1})).To(Succeed())

			data, err := reader.ReadFile("out.json")
			Expect(err).To(BeNil())
			Expect(string(data)).To(Equal("{\n    \"a\": 1\n}\n"))

			var back map[string]int
			Expect(reader.ReadJSON("out.json", &back)).To(Succeed())
			Expect(back).To(HaveKeyWithValue("a", 1))
		})

		It("tolerates an existing directory", func() {
			Expect(writer.MkdirAll("a/b")).To(Succeed())
			Expect(writer.MkdirAll("a/b")).To(Succeed())
			Expect(reader.CheckPathExists("a/b")).To(Succeed())
		})

		It("ignores removal of missing files", func() {
			writer.RemoveIfExists("nope")
			Expect(writer.WriteFile("f", []byte("x"))).To(Succeed())
			writer.RemoveIfExists("f")
			Expect(reader.CheckPathExists("f")).ToNot(Succeed())
		})

		It("replaces an existing link with a relative one", func() {
			Expect(writer.MkdirAll("equi")).To(Succeed())
			Expect(writer.MkdirAll("work")).To(Succeed())
			Expect(writer.WriteFile("equi/CONTCAR", []byte("one"))).To(Succeed())
			Expect(writer.WriteFile("work/POSCAR", []byte("stale"))).To(Succeed())

			Expect(writer.Symlink("equi/CONTCAR", "work/POSCAR")).To(Succeed())

			target, err := os.Readlink(filepath.Join(root, "work", "POSCAR"))
			Expect(err).To(BeNil())
			Expect(target).To(Equal(filepath.Join("..", "equi", "CONTCAR")))

			data, err := reader.ReadFile("work/POSCAR")
			Expect(err).To(BeNil())
			Expect(string(data)).To(Equal("one"))
		})
	})

	Context("Reader", func() {
		It("reports regular files", func() {
			Expect(writer.WriteFile("f", []byte("x"))).To(Succeed())
			Expect(writer.MkdirAll("d")).To(Succeed())
			Expect(reader.IsFile("f")).To(BeTrue())
			Expect(reader.IsFile("d")).To(BeFalse())
			Expect(reader.IsFile("missing")).To(BeFalse())
		})

		It("fails on malformed JSON", func() {
			Expect(writer.WriteFile("bad.json", []byte("{"))).To(Succeed())
			var v map[string]interface{}
			Expect(reader.ReadJSON("bad.json", &v)).ToNot(Succeed())
		})
	})

	Context("task directories", func() {
		It("names tasks with six digits", func() {
			Expect(fileio.TaskName(0)).To(Equal("task.000000"))
			Expect(fileio.TaskName(23)).To(Equal("task.000023"))
		})

		It("lists only task directories in order", func() {
			for _, name := range []string{"task.000002", "task.000000", "task.000001", "task.abc", "other"} {
				Expect(writer.MkdirAll(name)).To(Succeed())
			}
			Expect(writer.WriteFile("task.000003", []byte("not a dir"))).To(Succeed())

			tasks, err := fileio.TaskDirs(root)
			Expect(err).To(BeNil())
			Expect(tasks).To(Equal([]string{
				filepath.Join(root, "task.000000"),
				filepath.Join(root, "task.000001"),
				filepath.Join(root, "task.000002"),
			}))
		})
	})
})
