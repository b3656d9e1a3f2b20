package listing

// maxVisiblePages, sayfalama kontrolünde elips kullanmadan gösterilebilecek
// en fazla sayfa sayısı.
const maxVisiblePages = 5

// PageLink, sayfalama kontrolündeki bir öğe: ya bir sayfa numarası ya da elips.
type PageLink struct {
	Number   int  `json:"number,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageNumbers, sayfalama kontrolünde gösterilecek öğeleri üretir.
//
//	total <= 5          → 1 2 3 4 5
//	current <= 3        → 1 2 3 4 … N
//	current >= N-2      → 1 … N-3 N-2 N-1 N
//	aksi halde          → 1 … c-1 c c+1 … N
//
// total < 1 ise boş liste döner.
func PageNumbers(current, total int) []PageLink {
	if total < 1 {
		return nil
	}

	var nums []int // 0 → elips
	switch {
	case total <= maxVisiblePages:
		for i := 1; i <= total; i++ {
			nums = append(nums, i)
		}
	case current <= 3:
		nums = []int{1, 2, 3, 4, 0, total}
	case current >= total-2:
		nums = []int{1, 0, total - 3, total - 2, total - 1, total}
	default:
		nums = []int{1, 0, current - 1, current, current + 1, 0, total}
	}

	links := make([]PageLink, len(nums))
	for i, n := range nums {
		if n == 0 {
			links[i] = PageLink{Ellipsis: true}
			continue
		}
		links[i] = PageLink{Number: n, Current: n == current}
	}
	return links
}
