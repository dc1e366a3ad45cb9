package monitoring

import (
	"encoding/json"
	"net/http/httptest"
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/dnclab/dnc"
)

type sampleStruct struct {
	field1 int
	field2 string
	field3 *sampleStruct
	field4 []sampleStruct
}

func buildComponent(name string) *dnc.Comp {
	comp, err := dnc.MakeBuilder().
		WithMemorySize(32).
		WithMemoryWidth(4).
		WithUsageBlockSize(16).
		WithReadHeads(1).
		WithWriteHeads(1).
		WithInputs(2).
		WithOutputs(2).
		WithHiddens(4).
		Build(name)
	if err != nil {
		panic(err)
	}

	return comp
}

var _ = Describe("Monitor", func() {
	var (
		m    *Monitor
		comp *dnc.Comp
	)

	BeforeEach(func() {
		m = NewMonitor()
		comp = buildComponent("Comp")
		m.RegisterComponent(comp)
	})

	AfterEach(func() {
		comp.Release()
	})

	It("should list registered components", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/list_components", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(200))
		Expect(w.Body.String()).To(Equal(`["Comp"]`))
	})

	It("should report usage", func() {
		comp.Tracker().NoteWrite(0, 0, 0.5)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/usage/Comp", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(200))

		rsp := usageRsp{}
		Expect(json.Unmarshal(w.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Blocks).To(HaveLen(2))
		Expect(rsp.Blocks[0]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(rsp.MeanUsage).To(BeNumerically(">", 0))
	})

	It("should report training error", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/error/Comp", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(200))
		Expect(w.Body.String()).To(ContainSubstring("training_error"))
	})

	It("should clear memory on request", func() {
		comp.Tracker().NoteWrite(0, 1, 1)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/clear/Comp", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(200))
		Expect(comp.Tracker().MeanUsage()).To(BeZero())
	})

	It("should answer 404 for unknown components", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/usage/Nowhere", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(404))
	})

	It("should list progress bars", func() {
		bar := m.CreateProgressBar("epoch", 100)
		bar.IncrementFinished(10)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/progress", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(200))
		Expect(w.Body.String()).To(ContainSubstring(`"epoch"`))

		m.CompleteProgressBar(bar)
		Expect(m.progressBars).To(BeEmpty())
	})

	It("should walk int fields", func() {
		s := &sampleStruct{
			field1: 1,
		}

		elem, err := m.walkFields(s, "field1")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.Int))
		Expect(elem.Int()).To(Equal(int64(1)))
	})

	It("should walk string fields", func() {
		s := &sampleStruct{
			field2: "abc",
		}

		elem, err := m.walkFields(s, "field2")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.String))
		Expect(elem.String()).To(Equal("abc"))
	})

	It("should walk recursively", func() {
		s := &sampleStruct{
			field3: &sampleStruct{
				field1: 1,
			},
		}

		elem, err := m.walkFields(s, "field3.field1")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.Int))
		Expect(elem.Int()).To(Equal(int64(1)))
	})

	It("should walk slices recursively", func() {
		s := &sampleStruct{
			field4: []sampleStruct{{
				field4: []sampleStruct{
					{field1: 1},
				},
			}, {}},
		}

		elem, err := m.walkFields(s, "field4.0.field4.0.field1")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.Int))
		Expect(elem.Int()).To(Equal(int64(1)))
	})

	It("should reject non-numeric slice indices", func() {
		s := &sampleStruct{
			field4: []sampleStruct{{}},
		}

		_, err := m.walkFields(s, "field4.x")

		Expect(err).To(HaveOccurred())
	})
})
