package property_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dptools/elastic/internal/property"
)

var _ = Describe("params", func() {
	Context("ResolveParams", func() {
		It("fills defaults into the caller's map", func() {
			params := map[string]interface{}{"type": "elastic", "skip": true}

			cfg, err := property.ResolveParams(params)
			Expect(err).To(BeNil())
			Expect(cfg.Type).To(Equal("elastic"))
			Expect(cfg.NormDeform).To(Equal(property.DefaultNormDeform))
			Expect(cfg.ShearDeform).To(Equal(property.DefaultShearDeform))
			Expect(cfg.RelaxPos()).To(BeTrue())
			Expect(cfg.RelaxShape()).To(BeFalse())
			Expect(cfg.RelaxVol()).To(BeFalse())

			Expect(params).To(HaveKeyWithValue("cal_type", "relaxation"))
			Expect(params).To(HaveKeyWithValue("cal_setting", property.DefaultCalSetting()))
			Expect(params).To(HaveKeyWithValue("reprod-opt", false))
			Expect(params).To(HaveKeyWithValue("skip", true))
		})

		It("keeps supplied values except reprod-opt", func() {
			setting := map[string]interface{}{"relax_pos": false, "relax_shape": true, "input_prop": "in.lammps"}
			params := map[string]interface{}{
				"type":         "elastic",
				"norm_deform":  0.01,
				"shear_deform": 2,
				"cal_type":     "static",
				"cal_setting":  setting,
				"reprod-opt":   true,
			}

			cfg, err := property.ResolveParams(params)
			Expect(err).To(BeNil())
			Expect(cfg.NormDeform).To(Equal(0.01))
			Expect(cfg.ShearDeform).To(Equal(2.0))
			Expect(cfg.CalType).To(Equal("static"))
			Expect(cfg.RelaxShape()).To(BeTrue())
			Expect(cfg.Reprod).To(BeFalse())
			Expect(params["cal_setting"]).To(Equal(setting))
			Expect(params).To(HaveKeyWithValue("reprod-opt", false))
		})

		It("rejects wrongly typed values", func() {
			for _, params := range []map[string]interface{}{
				{"norm_deform": "0.01"},
				{"shear_deform": true},
				{"cal_type": 1.0},
				{"cal_setting": "relax"},
				{"start_confs_path": 3.0},
			} {
				_, err := property.ResolveParams(params)
				Expect(err).To(MatchError(property.ErrInvalidParameter))
			}
		})

		It("rejects a nil map", func() {
			_, err := property.ResolveParams(nil)
			Expect(err).To(MatchError(property.ErrNilParameters))
		})
	})

	Context("LoadParams", func() {
		It("reads JSON and YAML alike", func() {
			dir := GinkgoT().TempDir()
			jsonFile := filepath.Join(dir, "param.json")
			yamlFile := filepath.Join(dir, "param.yaml")
			Expect(os.WriteFile(jsonFile, []byte(`{"type": "elastic", "norm_deform": 0.01}`), 0o644)).To(Succeed())
			Expect(os.WriteFile(yamlFile, []byte("type: elastic\nnorm_deform: 0.01\n"), 0o644)).To(Succeed())

			for _, f := range []string{jsonFile, yamlFile} {
				params, err := property.LoadParams(f)
				Expect(err).To(BeNil())
				Expect(params).To(HaveKeyWithValue("type", "elastic"))
				Expect(params).To(HaveKeyWithValue("norm_deform", 0.01))
			}
		})

		It("fails on a missing file", func() {
			_, err := property.LoadParams(filepath.Join(GinkgoT().TempDir(), "none.json"))
			Expect(err).ToNot(BeNil())
		})
	})

	It("exposes the type and the resolved parameters", func() {
		params := map[string]interface{}{"type": "elastic"}
		e, err := property.NewElastic(params)
		Expect(err).To(BeNil())
		Expect(e.TaskType()).To(Equal("elastic"))
		Expect(e.TaskParam()).To(HaveKey("cal_setting"))
		Expect(e.Config().CalType).To(Equal("relaxation"))
	})
})
