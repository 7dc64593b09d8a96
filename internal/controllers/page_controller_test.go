package controllers_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"netlease/internal/testhelpers"
)

func renderPage(router *gin.Engine, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	Expect(err).NotTo(HaveOccurred())
	return resp, doc
}

var _ = Describe("PageController", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		testhelpers.Activate()
		router = newRouter()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	Describe("GET /", func() {
		It("renders one card per tenant", func() {
			stubRecords()

			resp, doc := renderPage(router, "/")
			Expect(resp.Code).To(Equal(http.StatusOK))

			cards := doc.Find("li.tenant-card")
			Expect(cards.Length()).To(Equal(3))
			Expect(cards.First().Find("h2").Text()).To(Equal("Wendy's"))
		})

		It("links each card to its detail page", func() {
			stubRecords()

			_, doc := renderPage(router, "/")

			href, ok := doc.Find("li.tenant-card a").First().Attr("href")
			Expect(ok).To(BeTrue())
			Expect(href).To(Equal("/tenants/1"))
		})

		It("applies the same filters as the API", func() {
			stubRecords()

			_, doc := renderPage(router, "/?public=true")

			cards := doc.Find("li.tenant-card")
			Expect(cards.Length()).To(Equal(2))
		})

		It("shows an empty state when nothing matches", func() {
			stubRecords()

			_, doc := renderPage(router, "/?q=zzz")

			Expect(doc.Find("li.tenant-card").Length()).To(BeZero())
			Expect(doc.Find("li.empty").Text()).To(ContainSubstring("No tenants match"))
		})
	})

	Describe("GET /tenants/:id", func() {
		It("renders the profile", func() {
			stubRecords()

			resp, doc := renderPage(router, "/tenants/1")
			Expect(resp.Code).To(Equal(http.StatusOK))

			Expect(doc.Find("h1").Text()).To(Equal("Wendy's"))
			Expect(doc.Find("section.facts dd").First().Text()).To(Equal("Dublin, Ohio"))
		})

		It("renders a not-found page for an unknown id", func() {
			stubRecords()

			resp, doc := renderPage(router, "/tenants/999")
			Expect(resp.Code).To(Equal(http.StatusNotFound))
			Expect(doc.Find("h1").Text()).To(Equal("Tenant not found"))
		})
	})
})
