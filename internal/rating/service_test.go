package rating

import "testing"

func TestSubmit_Flow(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.AddOrder(1, 42, true, false, []int{1, 2})
	service := NewService(repo)

	err := service.Submit(Submission{
		OrderID:  1,
		UserID:   42,
		Ratings:  map[int]int{1: 5, 2: 3},
		Feedback: "fast delivery",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(repo.Submissions) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(repo.Submissions))
	}
	if repo.Submissions[0].Feedback != "fast delivery" {
		t.Fatalf("unexpected feedback %q", repo.Submissions[0].Feedback)
	}

	// rating the same order twice must fail
	err = service.Submit(Submission{OrderID: 1, UserID: 42, Ratings: map[int]int{1: 4}})
	if err != ErrNotRatable {
		t.Fatalf("expected ErrNotRatable on second submission, got %v", err)
	}
}

func TestSubmit_Preconditions(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.AddOrder(1, 42, false, false, []int{1})
	repo.AddOrder(2, 42, true, true, []int{1})
	repo.AddOrder(3, 42, true, false, []int{1})
	service := NewService(repo)

	// not yet delivered
	if err := service.Submit(Submission{OrderID: 1, UserID: 42, Ratings: map[int]int{1: 5}}); err != ErrNotRatable {
		t.Fatalf("expected ErrNotRatable for undelivered order, got %v", err)
	}
	// already rated
	if err := service.Submit(Submission{OrderID: 2, UserID: 42, Ratings: map[int]int{1: 5}}); err != ErrNotRatable {
		t.Fatalf("expected ErrNotRatable for rated order, got %v", err)
	}
	// wrong owner
	if err := service.Submit(Submission{OrderID: 3, UserID: 7, Ratings: map[int]int{1: 5}}); err != ErrNotRatable {
		t.Fatalf("expected ErrNotRatable for foreign order, got %v", err)
	}
	// unknown order
	if err := service.Submit(Submission{OrderID: 99, UserID: 42, Ratings: map[int]int{1: 5}}); err != ErrNotRatable {
		t.Fatalf("expected ErrNotRatable for unknown order, got %v", err)
	}
}

func TestSubmit_ValidatesRatings(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.AddOrder(1, 42, true, false, []int{1, 2})
	service := NewService(repo)

	if err := service.Submit(Submission{OrderID: 1, UserID: 42}); err != ErrNoRatings {
		t.Fatalf("expected ErrNoRatings, got %v", err)
	}
	if err := service.Submit(Submission{OrderID: 1, UserID: 42, Ratings: map[int]int{1: 0}}); err != ErrInvalidValue {
		t.Fatalf("expected ErrInvalidValue for 0, got %v", err)
	}
	if err := service.Submit(Submission{OrderID: 1, UserID: 42, Ratings: map[int]int{1: 6}}); err != ErrInvalidValue {
		t.Fatalf("expected ErrInvalidValue for 6, got %v", err)
	}
	// product 9 was never on the order
	if err := service.Submit(Submission{OrderID: 1, UserID: 42, Ratings: map[int]int{1: 5, 9: 4}}); err != ErrUnknownProduct {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	if len(repo.Submissions) != 0 {
		t.Fatalf("expected no submission stored after rejections, got %d", len(repo.Submissions))
	}
}
