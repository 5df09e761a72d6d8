package store_test

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/dptools/elastic/internal/config"
	st "github.com/dptools/elastic/internal/store"
	"github.com/dptools/elastic/internal/store/model"
)

func newReport(workDir string, bv float64) model.Report {
	tensor := make([]float64, 36)
	tensor[0] = 3 * bv
	return model.Report{
		WorkDir:       workDir,
		Params:        model.MakeJSONField(map[string]interface{}{"type": "elastic"}),
		ElasticTensor: model.MakeJSONField(tensor),
		BV:            bv,
		GV:            1,
		EV:            2,
		UV:            0.25,
	}
}

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		cfg, err := config.Load()
		Expect(err).To(BeNil())
		cfg.Database.Type = "sqlite"
		cfg.Database.Name = filepath.Join(GinkgoT().TempDir(), "elastic.db")

		db, err := st.InitDB(cfg)
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		store.Close()
	})

	AfterEach(func() {
		gormDB.Exec("DELETE FROM reports;")
	})

	Context("report", func() {
		It("creates and reads back a report", func() {
			created, err := store.Report().Create(context.TODO(), newReport("/w/elastic_00", 76.5))
			Expect(err).To(BeNil())
			Expect(created.ID).ToNot(Equal(uuid.Nil))

			got, err := store.Report().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(got.WorkDir).To(Equal("/w/elastic_00"))
			Expect(got.BV).To(Equal(76.5))
			Expect(got.UV).To(Equal(0.25))
			Expect(got.ElasticTensor.Data).To(HaveLen(36))
			Expect(got.ElasticTensor.Data[0]).To(Equal(229.5))
			Expect(got.Params.Data).To(HaveKeyWithValue("type", "elastic"))
		})

		It("rejects a duplicated id", func() {
			r := newReport("/w/elastic_00", 1)
			r.ID = uuid.New()
			_, err := store.Report().Create(context.TODO(), r)
			Expect(err).To(BeNil())
			_, err = store.Report().Create(context.TODO(), r)
			Expect(err).To(MatchError(st.ErrDuplicateKey))
		})

		It("lists reports filtered by work directory", func() {
			for i, dir := range []string{"/a", "/b", "/a"} {
				_, err := store.Report().Create(context.TODO(), newReport(dir, float64(i)))
				Expect(err).To(BeNil())
			}

			all, err := store.Report().List(context.TODO(), st.NewReportQueryFilter())
			Expect(err).To(BeNil())
			Expect(all).To(HaveLen(3))

			onlyA, err := store.Report().List(context.TODO(), st.NewReportQueryFilter().ByWorkDir("/a"))
			Expect(err).To(BeNil())
			Expect(onlyA).To(HaveLen(2))

			limited, err := store.Report().List(context.TODO(), st.NewReportQueryFilter().WithLimit(1))
			Expect(err).To(BeNil())
			Expect(limited).To(HaveLen(1))
		})

		It("returns ErrRecordNotFound for an unknown id", func() {
			_, err := store.Report().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(st.ErrRecordNotFound))
		})

		It("deletes a report", func() {
			created, err := store.Report().Create(context.TODO(), newReport("/a", 1))
			Expect(err).To(BeNil())
			Expect(store.Report().Delete(context.TODO(), created.ID)).To(Succeed())
			_, err = store.Report().Get(context.TODO(), created.ID)
			Expect(err).To(MatchError(st.ErrRecordNotFound))
		})
	})

	Context("transaction", func() {
		It("commits a report", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())
			_, err = store.Report().Create(ctx, newReport("/a", 1))
			Expect(err).To(BeNil())

			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from reports;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rolls back a report", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())
			_, err = store.Report().Create(ctx, newReport("/a", 1))
			Expect(err).To(BeNil())

			reports, err := store.Report().List(ctx, st.NewReportQueryFilter())
			Expect(err).To(BeNil())
			Expect(reports).To(HaveLen(1))

			_, rerr := st.Rollback(ctx)
			Expect(rerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from reports;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("commits when the callback succeeds", func() {
			err := st.InTransaction(context.TODO(), store, func(ctx context.Context) error {
				_, err := store.Report().Create(ctx, newReport("/a", 1))
				return err
			})
			Expect(err).To(BeNil())

			reports, err := store.Report().List(context.TODO(), st.NewReportQueryFilter())
			Expect(err).To(BeNil())
			Expect(reports).To(HaveLen(1))
		})

		It("keeps a committed report readable outside the transaction", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())
			created, err := store.Report().Create(ctx, newReport("/a", 3))
			Expect(err).To(BeNil())

			_, err = st.Commit(ctx)
			Expect(err).To(BeNil())

			got, err := store.Report().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(got.BV).To(Equal(3.0))
		})

		It("leaves the outcome of a nested call to the outer transaction", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			err = st.InTransaction(ctx, store, func(ctx context.Context) error {
				_, err := store.Report().Create(ctx, newReport("/a", 1))
				return err
			})
			Expect(err).To(BeNil())
			Expect(st.FromContext(ctx)).ToNot(BeNil())

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())

			reports, err := store.Report().List(context.TODO(), st.NewReportQueryFilter())
			Expect(err).To(BeNil())
			Expect(reports).To(BeEmpty())
		})

		It("rolls back when the callback fails", func() {
			boom := errors.New("boom")
			err := st.InTransaction(context.TODO(), store, func(ctx context.Context) error {
				if _, err := store.Report().Create(ctx, newReport("/a", 1)); err != nil {
					return err
				}
				return boom
			})
			Expect(err).To(MatchError(boom))

			reports, err := store.Report().List(context.TODO(), st.NewReportQueryFilter())
			Expect(err).To(BeNil())
			Expect(reports).To(BeEmpty())
		})
	})
})
