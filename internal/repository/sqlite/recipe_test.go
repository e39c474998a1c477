package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mertkara/recipe-box/internal/domain"
)

func TestRecipeRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	recipe := createTestRecipe(t, db, author.ID, "Bread")

	if recipe.ID == "" {
		t.Fatal("expected recipe ID to be set")
	}
	if recipe.NumberOfLikes != 0 || len(recipe.Likes) != 0 {
		t.Fatalf("expected new recipe to have no likes, got %d/%v", recipe.NumberOfLikes, recipe.Likes)
	}

	found, err := db.Recipes().GetByID(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != "Bread" || found.AuthorID != author.ID {
		t.Fatalf("unexpected recipe: %+v", found)
	}
	if len(found.Ingredients) != 2 || found.Ingredients[0] != "flour" {
		t.Fatalf("expected ingredients in order, got %v", found.Ingredients)
	}
	if len(found.Instructions) != 2 || found.Instructions[0].Step != 1 || found.Instructions[1].Detail != "bake" {
		t.Fatalf("expected instructions in order, got %v", found.Instructions)
	}
}

func TestRecipeRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Recipes().GetByID(context.Background(), uuid.NewString())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecipeRepository_Update_RewritesChildren(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	liker := createTestUser(t, db, "liker@example.com")
	recipe := createTestRecipe(t, db, author.ID, "Bread")

	if _, err := db.Recipes().ToggleLike(ctx, recipe.ID, liker.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	recipe.Title = "Sourdough"
	recipe.Ingredients = []string{"flour", "water", "starter"}
	recipe.Instructions = []domain.InstructionStep{{Step: 1, Detail: "wait a long time"}}
	if err := db.Recipes().Update(ctx, recipe); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := db.Recipes().GetByID(ctx, recipe.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Title != "Sourdough" {
		t.Fatalf("expected updated title, got %q", found.Title)
	}
	if len(found.Ingredients) != 3 || found.Ingredients[2] != "starter" {
		t.Fatalf("expected rewritten ingredients, got %v", found.Ingredients)
	}
	if len(found.Instructions) != 1 {
		t.Fatalf("expected rewritten instructions, got %v", found.Instructions)
	}

	// Likes survive field updates untouched.
	if found.NumberOfLikes != 1 || len(found.Likes) != 1 || found.Likes[0] != liker.ID {
		t.Fatalf("expected like to survive update, got %d/%v", found.NumberOfLikes, found.Likes)
	}
}

func TestRecipeRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)

	err := db.Recipes().Update(context.Background(), &domain.Recipe{
		ID:           uuid.NewString(),
		Title:        "Ghost",
		Ingredients:  []string{"nothing"},
		Instructions: []domain.InstructionStep{{Step: 1, Detail: "vanish"}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecipeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	recipe := createTestRecipe(t, db, author.ID, "Bread")

	if err := db.Recipes().Delete(ctx, recipe.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := db.Recipes().GetByID(ctx, recipe.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := db.Recipes().Delete(ctx, recipe.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRecipeRepository_ToggleLike(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	liker := createTestUser(t, db, "liker@example.com")
	recipe := createTestRecipe(t, db, author.ID, "Bread")

	liked, err := db.Recipes().ToggleLike(ctx, recipe.ID, liker.ID)
	if err != nil {
		t.Fatalf("first ToggleLike: %v", err)
	}
	if liked.NumberOfLikes != 1 || len(liked.Likes) != 1 || liked.Likes[0] != liker.ID {
		t.Fatalf("expected one like, got %d/%v", liked.NumberOfLikes, liked.Likes)
	}

	unliked, err := db.Recipes().ToggleLike(ctx, recipe.ID, liker.ID)
	if err != nil {
		t.Fatalf("second ToggleLike: %v", err)
	}
	if unliked.NumberOfLikes != 0 || len(unliked.Likes) != 0 {
		t.Fatalf("expected toggle to return to zero, got %d/%v", unliked.NumberOfLikes, unliked.Likes)
	}
}

func TestRecipeRepository_ToggleLike_CountMatchesSet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	recipe := createTestRecipe(t, db, author.ID, "Bread")
	likers := createTestUsers(t, db, 3)

	for _, u := range likers {
		got, err := db.Recipes().ToggleLike(ctx, recipe.ID, u.ID)
		if err != nil {
			t.Fatalf("ToggleLike: %v", err)
		}
		if got.NumberOfLikes != len(got.Likes) {
			t.Fatalf("count %d does not match set size %d", got.NumberOfLikes, len(got.Likes))
		}
	}

	got, err := db.Recipes().ToggleLike(ctx, recipe.ID, likers[1].ID)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if got.NumberOfLikes != 2 || len(got.Likes) != 2 {
		t.Fatalf("expected 2 likes after removal, got %d/%v", got.NumberOfLikes, got.Likes)
	}
	if got.LikedBy(likers[1].ID) {
		t.Fatal("expected removed liker to be absent from set")
	}
}

func TestRecipeRepository_ToggleLike_MissingRecipe(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "liker@example.com")

	_, err := db.Recipes().ToggleLike(context.Background(), uuid.NewString(), user.ID)
	if err == nil {
		t.Fatal("expected error toggling like on missing recipe")
	}
}

func TestRecipeRepository_ListPopular(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	likers := createTestUsers(t, db, 5)

	// Like counts 5, 3, 3, 1.
	counts := map[string]int{"Five": 5, "ThreeA": 3, "ThreeB": 3, "One": 1}
	for _, title := range []string{"Five", "ThreeA", "ThreeB", "One"} {
		recipe := createTestRecipe(t, db, author.ID, title)
		for i := 0; i < counts[title]; i++ {
			if _, err := db.Recipes().ToggleLike(ctx, recipe.ID, likers[i].ID); err != nil {
				t.Fatalf("ToggleLike: %v", err)
			}
		}
	}

	top, err := db.Recipes().ListPopular(ctx, 2)
	if err != nil {
		t.Fatalf("ListPopular: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(top))
	}
	if top[0].Title != "Five" || top[0].NumberOfLikes != 5 {
		t.Fatalf("expected Five first, got %+v", top[0])
	}
	if top[1].NumberOfLikes != 3 {
		t.Fatalf("expected a 3-like recipe second, got %+v", top[1])
	}
}

func TestRecipeRepository_ListRecent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	createTestRecipe(t, db, author.ID, "First")
	createTestRecipe(t, db, author.ID, "Second")
	createTestRecipe(t, db, author.ID, "Third")

	recent, err := db.Recipes().ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recent))
	}
}

func TestRecipeRepository_GetRandom(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.Recipes().GetRandom(ctx)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty collection, got %v", err)
	}

	author := createTestUser(t, db, "author@example.com")
	createTestRecipe(t, db, author.ID, "Only")

	recipe, err := db.Recipes().GetRandom(ctx)
	if err != nil {
		t.Fatalf("GetRandom: %v", err)
	}
	if recipe.Title != "Only" {
		t.Fatalf("expected the only recipe, got %+v", recipe)
	}
	if len(recipe.Ingredients) == 0 {
		t.Fatal("expected children to be loaded")
	}
}

func TestRecipeRepository_ListByAuthor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	createTestRecipe(t, db, alice.ID, "Alice's Soup")
	createTestRecipe(t, db, alice.ID, "Alice's Stew")
	createTestRecipe(t, db, bob.ID, "Bob's Toast")

	own, err := db.Recipes().ListByAuthor(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(own))
	}
	for _, recipe := range own {
		if recipe.AuthorID != alice.ID {
			t.Fatalf("expected author %s, got %s", alice.ID, recipe.AuthorID)
		}
	}
}

func TestRecipeRepository_ListLikedBy(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com")
	fan := createTestUser(t, db, "fan@example.com")

	liked := createTestRecipe(t, db, author.ID, "Liked")
	createTestRecipe(t, db, author.ID, "Ignored")

	if _, err := db.Recipes().ToggleLike(ctx, liked.ID, fan.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	favorites, err := db.Recipes().ListLikedBy(ctx, fan.ID, 10)
	if err != nil {
		t.Fatalf("ListLikedBy: %v", err)
	}
	if len(favorites) != 1 || favorites[0].Title != "Liked" {
		t.Fatalf("expected only the liked recipe, got %+v", favorites)
	}
}
